package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testIdentity struct {
	userID uuid.UUID
	email  string
}

func (i testIdentity) GetUserID() uuid.UUID { return i.userID }
func (i testIdentity) GetEmail() string     { return i.email }

// testTokenValidator accepts tokens from a fixed table.
type testTokenValidator map[string]testIdentity

func (v testTokenValidator) ValidateToken(tokenString string) (Identity, error) {
	id, ok := v[tokenString]
	if !ok {
		return nil, fmt.Errorf("invalid token")
	}
	return id, nil
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	validator := testTokenValidator{"good-token": {userID: userID, email: "lead@example.com"}}

	var got Principal
	handler := AuthMiddleware(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := GetPrincipal(r)
		require.NoError(t, err)
		got = p
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "valid token", header: "Bearer good-token", want: http.StatusOK},
		{name: "lowercase scheme", header: "bearer good-token", want: http.StatusOK},
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic good-token", want: http.StatusUnauthorized},
		{name: "no token", header: "Bearer", want: http.StatusUnauthorized},
		{name: "extra parts", header: "Bearer good-token extra", want: http.StatusUnauthorized},
		{name: "unknown token", header: "Bearer bad-token", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got = Principal{}
			req := httptest.NewRequest(http.MethodGet, "/candidates", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusOK {
				assert.Equal(t, userID, got.UserID)
				assert.Equal(t, "lead@example.com", got.Email)
				assert.Equal(t, "good-token", got.Token)
			} else {
				assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestGetUserID_MissingPrincipal(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := GetUserID(req)
	assert.Error(t, err)

	id := uuid.New()
	req = req.WithContext(WithPrincipal(req.Context(), Principal{UserID: id}))
	got, err := GetUserID(req)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}
