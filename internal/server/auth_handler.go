package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/smarthire/internal/server/middleware"
	"github.com/jonathan/smarthire/internal/types"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	userService *UserService
	jwtService  *JWTService
	google      GoogleVerifier
	validator   *validator.Validate
	onLogout    func(*types.User)
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userService *UserService, jwtService *JWTService, google GoogleVerifier) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
		google:      google,
		validator:   validator.New(),
	}
}

// Login handles email and password login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	user, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	h.issue(w, user)
}

// Google handles sign-in with a Google ID token.
func (h *AuthHandler) Google(w http.ResponseWriter, r *http.Request) {
	var req types.GoogleLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	identity, err := h.google.Verify(r.Context(), req.IDToken)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	h.issue(w, h.userService.FromGoogle(identity))
}

func (h *AuthHandler) issue(w http.ResponseWriter, user *types.User) {
	token, err := h.jwtService.GenerateToken(user)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.LoginResponse{User: user, Token: token})
}

// Logout revokes the caller's token and forgets their session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}

	h.jwtService.Revoke(claims)
	if h.onLogout != nil {
		h.onLogout(claims.User())
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Signed out successfully"})
}

// Me returns the signed-in user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.claims(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, claims.User())
}

func (h *AuthHandler) claims(w http.ResponseWriter, r *http.Request) (*Claims, bool) {
	principal, err := middleware.GetPrincipal(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil, false
	}
	claims, err := h.jwtService.ValidateToken(principal.Token)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil, false
	}
	return claims, true
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			// Return first validation error for simplicity
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
