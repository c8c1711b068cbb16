package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"catkeeper/internal/server/crypto"
	"catkeeper/internal/server/middleware"
)

func verifierConfig() crypto.JWTConfig {
	return crypto.JWTConfig{
		Issuer:     "catkeeper-test",
		Audience:   "catkeeper-api",
		SigningKey: "supersecretkeysupersecretkey123456",
		AccessTTL:  time.Minute,
	}
}

// nextHandler проверяет, что Identity доехала до хендлера
func nextHandler(t *testing.T, wantID int64, wantEmail string, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		id, ok := middleware.IdentityFromContext(r.Context())
		require.True(t, ok)
		require.Equal(t, wantID, id.ID)
		require.Equal(t, wantEmail, id.Email)
		w.WriteHeader(http.StatusOK)
	})
}

// Успех: валидный токен пропускается, Identity в контексте
func TestAuthMiddleware_OK(t *testing.T) {
	cfg := verifierConfig()
	v := middleware.NewJWTVerifier(cfg)

	token, err := crypto.NewAccessToken(7, "cat@gmail.com", cfg)
	require.NoError(t, err)

	called := false
	h := v.AuthMiddleware()(nextHandler(t, 7, "cat@gmail.com", &called))

	req := httptest.NewRequest(http.MethodGet, "/cats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)
}

// Нет заголовка — 401
func TestAuthMiddleware_MissingToken(t *testing.T) {
	v := middleware.NewJWTVerifier(verifierConfig())

	called := false
	h := v.AuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/cats", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.False(t, called)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

// Просроченный токен — 401
func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	cfg := verifierConfig()
	expired := cfg
	expired.AccessTTL = -time.Minute

	token, err := crypto.NewAccessToken(7, "cat@gmail.com", expired)
	require.NoError(t, err)

	v := middleware.NewJWTVerifier(cfg)
	h := v.AuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/cats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

// Разбор заголовка Authorization
func TestExtractBearer(t *testing.T) {
	require.Equal(t, "abc", middleware.ExtractBearer("Bearer abc"))
	require.Equal(t, "abc", middleware.ExtractBearer("bearer abc"))
	require.Equal(t, "", middleware.ExtractBearer(""))
	require.Equal(t, "", middleware.ExtractBearer("Basic abc"))
	require.Equal(t, "", middleware.ExtractBearer("Bearer"))
}
