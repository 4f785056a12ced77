package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// LoginRequest represents an email/password login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginRequest carries a Google ID token obtained by the browser sign-in flow.
type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// User is the authenticated identity. The dashboard only cares whether one is present.
type User struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name,omitempty"`
	Provider string    `json:"provider"`
}

// LoginResponse represents the login response with user data and authentication token.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the GoogleLoginRequest using the validator.
func (r *GoogleLoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
