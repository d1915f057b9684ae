package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJWTAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	var gotUserID int64
	var gotSuperAdmin bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = r.Context().Value("user_id").(int64)
		gotSuperAdmin = r.Context().Value("super_admin").(bool)
		w.WriteHeader(http.StatusOK)
	})

	token := signToken(t, "test-secret", jwt.MapClaims{
		"user_id":     float64(7),
		"username":    "carol",
		"super_admin": true,
		"exp":         time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	JWTAuthMiddleware(next).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(7), gotUserID)
	assert.True(t, gotSuperAdmin)
}

func TestJWTAuthMiddlewareSessionCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	token := signToken(t, "test-secret", jwt.MapClaims{
		"user_id":  float64(7),
		"username": "carol",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: token})
	rr := httptest.NewRecorder()
	JWTAuthMiddleware(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestJWTAuthMiddlewareRejections(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run")
	})

	tests := []struct {
		name  string
		setup func(r *http.Request)
	}{
		{"missing token", func(r *http.Request) {}},
		{"garbage token", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer not-a-token")
		}},
		{"wrong secret", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", jwt.MapClaims{
				"user_id":  float64(7),
				"username": "carol",
				"exp":      time.Now().Add(time.Hour).Unix(),
			}))
		}},
		{"expired token", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", jwt.MapClaims{
				"user_id":  float64(7),
				"username": "carol",
				"exp":      time.Now().Add(-time.Hour).Unix(),
			}))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
			tt.setup(req)
			rr := httptest.NewRecorder()
			JWTAuthMiddleware(next).ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}
