package config

import (
	"fmt"
	"os"
	"time"
)

// JWT defaults and limits.
const (
	DefaultJWTIssuer          = "smarthire"
	DefaultJWTExpirationHours = 24
	MinJWTSecretLength        = 16
)

// JWTConfig configures the bearer tokens issued after sign-in.
type JWTConfig struct {
	Secret          string // HMAC signing key
	ExpirationHours int
	Issuer          string
}

// NewJWTConfig reads JWT_SECRET (required), JWT_EXPIRATION_HOURS and JWT_ISSUER.
func NewJWTConfig() (*JWTConfig, error) {
	hours, err := envInt("JWT_EXPIRATION_HOURS", DefaultJWTExpirationHours)
	if err != nil {
		return nil, err
	}

	cfg := &JWTConfig{
		Secret:          os.Getenv("JWT_SECRET"),
		ExpirationHours: hours,
		Issuer:          envOr("JWT_ISSUER", DefaultJWTIssuer),
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// TTL is how long an issued token stays valid.
func (c *JWTConfig) TTL() time.Duration {
	return time.Duration(c.ExpirationHours) * time.Hour
}

func (c *JWTConfig) normalize() error {
	switch {
	case c.Secret == "":
		return fmt.Errorf("JWT_SECRET is required but not set")
	case len(c.Secret) < MinJWTSecretLength:
		return fmt.Errorf("JWT_SECRET must be at least %d characters", MinJWTSecretLength)
	case c.ExpirationHours < 1:
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	return nil
}
