package server

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/smarthire/internal/config"
	"github.com/jonathan/smarthire/internal/types"
)

// Sign-in providers.
const (
	ProviderPassword = "password"
	ProviderGoogle   = "google"
)

// userNamespace derives stable user ids from emails, so one person gets the
// same session whichever way they sign in.
var userNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://smarthire/users"))

// UserService authenticates the accounts listed in the configuration.
type UserService struct {
	users     map[string]config.User
	passwords *config.PasswordConfig
}

// NewUserService creates a new UserService over the configured accounts.
func NewUserService(users []config.User, passwords *config.PasswordConfig) *UserService {
	byEmail := make(map[string]config.User, len(users))
	for _, u := range users {
		byEmail[normalizeEmail(u.Email)] = u
	}
	return &UserService{users: byEmail, passwords: passwords}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserID returns the id of the user with the given email.
func UserID(email string) uuid.UUID {
	return uuid.NewSHA1(userNamespace, []byte(normalizeEmail(email)))
}

// Login checks an email and password against the configured accounts.
func (s *UserService) Login(_ context.Context, req *types.LoginRequest) (*types.User, error) {
	u, ok := s.users[normalizeEmail(req.Email)]
	if !ok || !s.passwords.VerifyPassword(req.Password, u.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return &types.User{
		ID:       UserID(u.Email),
		Email:    normalizeEmail(u.Email),
		Name:     u.Name,
		Provider: ProviderPassword,
	}, nil
}

// FromGoogle builds the user for a verified Google identity.
func (s *UserService) FromGoogle(id *GoogleIdentity) *types.User {
	name := id.Name
	if u, ok := s.users[normalizeEmail(id.Email)]; ok && u.Name != "" {
		name = u.Name
	}
	return &types.User{
		ID:       UserID(id.Email),
		Email:    normalizeEmail(id.Email),
		Name:     name,
		Provider: ProviderGoogle,
	}
}
