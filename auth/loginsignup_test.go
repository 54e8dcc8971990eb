package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bazario/globals"
	"bazario/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims middleware.Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	signed, err := token.SignedString(globals.JwtSecret)
	require.NoError(t, err)
	return signed
}

func refreshWith(token string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v2/user/token/refresh", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	refreshTokenHandler(w, r)
	return w
}

func TestRefreshToken_RejectsTokenWithoutExpiry(t *testing.T) {
	// A validly-signed token can omit exp entirely; the handler must 401
	// instead of dereferencing a nil ExpiresAt.
	token := signToken(t, middleware.Claims{Username: "mira", UserID: "u123"})
	w := refreshWith(token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshToken_RejectsFreshToken(t *testing.T) {
	token := signToken(t, middleware.Claims{
		Username: "mira",
		UserID:   "u123",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(2 * time.Hour)),
		},
	})
	w := refreshWith(token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
