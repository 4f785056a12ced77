package config

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// Accepted bcrypt cost range.
const (
	MinBcryptCost     = 10
	MaxBcryptCost     = 14
	DefaultBcryptCost = 12
)

// PasswordConfig hashes and checks the passwords of config file users.
type PasswordConfig struct {
	BcryptCost int
	Pepper     string // appended to every password before hashing
}

// NewPasswordConfig reads BCRYPT_COST and PASSWORD_PEPPER.
func NewPasswordConfig() (*PasswordConfig, error) {
	cost, err := envInt("BCRYPT_COST", DefaultBcryptCost)
	if err != nil {
		return nil, err
	}
	if cost < MinBcryptCost || cost > MaxBcryptCost {
		return nil, fmt.Errorf("bcrypt cost out of range: %d (must be %d-%d)", cost, MinBcryptCost, MaxBcryptCost)
	}
	return &PasswordConfig{BcryptCost: cost, Pepper: os.Getenv("PASSWORD_PEPPER")}, nil
}

// HashPassword returns the bcrypt hash of the peppered password.
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw+c.Pepper), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether pw matches a hash made by HashPassword.
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(pw+c.Pepper)) == nil
}
