package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jonathan/smarthire/internal/schemas"
	"github.com/jonathan/smarthire/internal/selection"
	"github.com/jonathan/smarthire/internal/session"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid credentials", err: &ErrInvalidCredentials{}, want: http.StatusUnauthorized},
		{name: "unauthenticated", err: &ErrUnauthenticated{Reason: "x"}, want: http.StatusUnauthorized},
		{name: "candidate not found", err: &ErrCandidateNotFound{ID: 3}, want: http.StatusNotFound},
		{name: "validation", err: &ErrValidation{Field: "id", Message: "bad"}, want: http.StatusBadRequest},
		{name: "selection", err: &selection.Error{Message: "unknown"}, want: http.StatusBadRequest},
		{name: "schema", err: &schemas.ValidationError{}, want: http.StatusBadRequest},
		{name: "empty team", err: session.ErrEmptyTeam, want: http.StatusConflict},
		{name: "wrapped empty team", err: fmt.Errorf("export: %w", session.ErrEmptyTeam), want: http.StatusConflict},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", &ErrCandidateNotFound{ID: 1}), want: http.StatusNotFound},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "invalid email or password", (&ErrInvalidCredentials{}).Error())
	assert.Equal(t, "candidate not found: 7", (&ErrCandidateNotFound{ID: 7}).Error())
	assert.Equal(t, "validation error: id - bad", (&ErrValidation{Field: "id", Message: "bad"}).Error())

	cause := errors.New("token expired")
	err := &ErrUnauthenticated{Reason: "invalid google id token", Cause: cause}
	assert.Equal(t, "authentication failed: invalid google id token: token expired", err.Error())
	assert.ErrorIs(t, err, cause)
}
