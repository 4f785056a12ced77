package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/smarthire/internal/schemas"
	"github.com/jonathan/smarthire/internal/selection"
	"github.com/jonathan/smarthire/internal/session"
)

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUnauthenticated indicates a third-party identity could not be verified
type ErrUnauthenticated struct {
	Reason string
	Cause  error
}

func (e *ErrUnauthenticated) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("authentication failed: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("authentication failed: %s", e.Reason)
}

func (e *ErrUnauthenticated) Unwrap() error {
	return e.Cause
}

// ErrCandidateNotFound indicates the candidate id is not in the pool
type ErrCandidateNotFound struct {
	ID int
}

func (e *ErrCandidateNotFound) Error() string {
	return fmt.Sprintf("candidate not found: %d", e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		invalidCreds *ErrInvalidCredentials
		unauth       *ErrUnauthenticated
		notFound     *ErrCandidateNotFound
		validation   *ErrValidation
		selErr       *selection.Error
		schemaErr    *schemas.ValidationError
	)

	switch {
	case errors.As(err, &invalidCreds), errors.As(err, &unauth):
		return http.StatusUnauthorized
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation), errors.As(err, &selErr), errors.As(err, &schemaErr):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrEmptyTeam):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
