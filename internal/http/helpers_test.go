package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/rllL1/portfolio/internal/http/middleware"
	"github.com/rllL1/portfolio/pkg/ratelimiter"
)

const testJWTSecret = "super-secret-jwt-token-with-at-least-32-characters"

func newTestAuth() *middleware.AuthConfig {
	return middleware.NewAuthMiddleware(testJWTSecret, nil)
}

func newTestLimiter(t *testing.T) *ratelimiter.RateLimiter {
	rl := ratelimiter.NewRateLimiter()
	for _, ns := range []string{
		ratelimiter.NamespaceChat,
		ratelimiter.NamespaceLiveChat,
		ratelimiter.NamespaceContact,
		ratelimiter.NamespaceSignIn,
	} {
		rl.SetPolicy(ns, 100, time.Minute)
	}
	t.Cleanup(rl.Stop)
	return rl
}

func adminToken(t *testing.T) string {
	t.Helper()
	claims := middleware.SupabaseClaims{
		Email: "admin@example.com",
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin-1",
			Audience:  jwt.ClaimStrings{"authenticated"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

// doRequest serves one request; a non-nil body is encoded as JSON
func doRequest(t *testing.T, mux http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
