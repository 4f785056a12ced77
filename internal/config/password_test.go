package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordConfig(t *testing.T) {
	tests := []struct {
		name       string
		bcryptCost string
		pepper     string
		wantCost   int
		wantErr    bool
	}{
		{name: "default cost", wantCost: DefaultBcryptCost},
		{name: "boundary cost 10", bcryptCost: "10", wantCost: 10},
		{name: "boundary cost 14", bcryptCost: "14", wantCost: 14},
		{name: "with pepper", bcryptCost: "11", pepper: "pepper", wantCost: 11},
		{name: "cost too low", bcryptCost: "9", wantErr: true},
		{name: "cost too high", bcryptCost: "15", wantErr: true},
		{name: "invalid cost", bcryptCost: "invalid", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", tt.bcryptCost)
			t.Setenv("PASSWORD_PEPPER", tt.pepper)

			cfg, err := NewPasswordConfig()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, cfg.BcryptCost)
			assert.Equal(t, tt.pepper, cfg.Pepper)
		})
	}
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: MinBcryptCost}

	hash, err := cfg.HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.True(t, cfg.VerifyPassword("correct horse", hash))
	assert.False(t, cfg.VerifyPassword("wrong horse", hash))
	assert.False(t, cfg.VerifyPassword("correct horse", "not-a-hash"))
}

func TestPasswordConfig_PepperChangesVerification(t *testing.T) {
	peppered := &PasswordConfig{BcryptCost: MinBcryptCost, Pepper: "spice"}
	plain := &PasswordConfig{BcryptCost: MinBcryptCost}

	hash, err := peppered.HashPassword("secret")
	require.NoError(t, err)

	assert.True(t, peppered.VerifyPassword("secret", hash))
	assert.False(t, plain.VerifyPassword("secret", hash))
}
