package main

import (
	"strings"
	"testing"

	"github.com/jonathan/smarthire/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordCommand(t *testing.T) {
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("PASSWORD_PEPPER", "pepper")

	out, _, err := execute(t, "hash-password", "--password", "hunter22")
	require.NoError(t, err)

	hash := strings.TrimSpace(out)
	assert.True(t, strings.HasPrefix(hash, "$2a$10$"))

	passwords, err := config.NewPasswordConfig()
	require.NoError(t, err)
	assert.True(t, passwords.VerifyPassword("hunter22", hash))
	assert.False(t, passwords.VerifyPassword("hunter2", hash))
}

func TestHashPasswordCommand_RequiresPassword(t *testing.T) {
	_, _, err := execute(t, "hash-password")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestHashPasswordCommand_InvalidCost(t *testing.T) {
	t.Setenv("BCRYPT_COST", "99")
	_, _, err := execute(t, "hash-password", "--password", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bcrypt cost out of range")
}
