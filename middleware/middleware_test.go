package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bazario/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims *Claims) string {
	t.Helper()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(globals.JwtSecret)
	require.NoError(t, err)
	return signed
}

func TestAuthenticate_MissingToken(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Fatal("handler must not be called")
	})(rr, req, nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Fatal("handler must not be called")
	})(rr, req, nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthenticate_PassesUserIDThroughContext(t *testing.T) {
	signed := signToken(t, &Claims{Username: "alice", UserID: "u123", Role: []string{"user"}})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	var gotUserID string
	Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotUserID, _ = r.Context().Value(globals.UserIDKey).(string)
		w.WriteHeader(http.StatusOK)
	})(rr, req, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "u123", gotUserID)
}

func TestRequireRole_RejectsWrongRole(t *testing.T) {
	signed := signToken(t, &Claims{UserID: "u123", Role: []string{"user"}})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	RequireRole("seller", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Fatal("handler must not be called")
	})(rr, req, nil)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRequireRole_AllowsMatchingRole(t *testing.T) {
	signed := signToken(t, &Claims{UserID: "s1", Role: []string{"seller"}})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	called := false
	RequireRole("seller", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
		w.WriteHeader(http.StatusOK)
	})(rr, req, nil)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rr.Code)
}
