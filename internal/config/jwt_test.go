package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig_DefaultValues(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-long")
	t.Setenv("JWT_EXPIRATION_HOURS", "")
	t.Setenv("JWT_ISSUER", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-secret-key-long", cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours, "should use default expiration of 24 hours")
	assert.Equal(t, DefaultJWTIssuer, cfg.Issuer)
}

func TestNewJWTConfig_Env(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		expiration string
		wantHours  int
		wantErr    bool
	}{
		{name: "custom expiration", secret: "0123456789abcdef", expiration: "48", wantHours: 48},
		{name: "missing secret", secret: "", wantErr: true},
		{name: "short secret", secret: "short", wantErr: true},
		{name: "zero expiration", secret: "0123456789abcdef", expiration: "0", wantErr: true},
		{name: "non-numeric expiration", secret: "0123456789abcdef", expiration: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", tt.secret)
			t.Setenv("JWT_EXPIRATION_HOURS", tt.expiration)
			t.Setenv("JWT_ISSUER", "hiring-test")

			cfg, err := NewJWTConfig()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHours, cfg.ExpirationHours)
			assert.Equal(t, "hiring-test", cfg.Issuer)
		})
	}
}

func TestJWTConfig_TTL(t *testing.T) {
	cfg := &JWTConfig{ExpirationHours: 36}
	assert.Equal(t, 36*time.Hour, cfg.TTL())
}
