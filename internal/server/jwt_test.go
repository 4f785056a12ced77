package server

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonathan/smarthire/internal/config"
	"github.com/jonathan/smarthire/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestJWTService(t *testing.T) *JWTService {
	t.Helper()
	return NewJWTService(&config.JWTConfig{
		Secret:          testSecret,
		ExpirationHours: 24,
		Issuer:          config.DefaultJWTIssuer,
	})
}

func testUser() *types.User {
	return &types.User{ID: uuid.New(), Email: "lead@example.com", Name: "Lead", Provider: ProviderPassword}
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := setupTestJWTService(t)
	user := testUser()

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.GetUserID())
	assert.Equal(t, user.Email, claims.GetEmail())
	assert.Equal(t, user, claims.User())
	assert.Equal(t, config.DefaultJWTIssuer, claims.Issuer)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_TokensAreUnique(t *testing.T) {
	svc := setupTestJWTService(t)
	user := testUser()

	a, err := svc.GenerateToken(user)
	require.NoError(t, err)
	b, err := svc.GenerateToken(user)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestJWTService_ValidateRejects(t *testing.T) {
	svc := setupTestJWTService(t)
	user := testUser()

	t.Run("empty", func(t *testing.T) {
		_, err := svc.ValidateToken("")
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService(&config.JWTConfig{Secret: "another-secret-0123456789", ExpirationHours: 1, Issuer: config.DefaultJWTIssuer})
		token, err := other.GenerateToken(user)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorContains(t, err, "signature")
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewJWTService(&config.JWTConfig{Secret: testSecret, ExpirationHours: 1, Issuer: "someone-else"})
		token, err := other.GenerateToken(user)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		past := NewJWTService(&config.JWTConfig{Secret: testSecret, ExpirationHours: 1, Issuer: config.DefaultJWTIssuer})
		past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := past.GenerateToken(user)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorContains(t, err, "expired")
	})

	t.Run("none algorithm", func(t *testing.T) {
		claims := &Claims{UserID: user.ID, RegisteredClaims: jwt.RegisteredClaims{Issuer: config.DefaultJWTIssuer}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})
}

func TestJWTService_Revoke(t *testing.T) {
	svc := setupTestJWTService(t)

	token, err := svc.GenerateToken(testUser())
	require.NoError(t, err)
	other, err := svc.GenerateToken(testUser())
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	svc.Revoke(claims)

	_, err = svc.ValidateToken(token)
	assert.ErrorContains(t, err, "revoked")

	_, err = svc.ValidateToken(other)
	assert.NoError(t, err)
}

func TestJWTService_RevokePrunesExpiredEntries(t *testing.T) {
	svc := setupTestJWTService(t)
	svc.revoked["old"] = time.Now().Add(-time.Minute)

	claims, err := svc.ValidateToken(mustToken(t, svc))
	require.NoError(t, err)
	svc.Revoke(claims)

	assert.NotContains(t, svc.revoked, "old")
	assert.Contains(t, svc.revoked, claims.ID)
}

func mustToken(t *testing.T, svc *JWTService) string {
	t.Helper()
	token, err := svc.GenerateToken(testUser())
	require.NoError(t, err)
	return token
}
