package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rllL1/portfolio/pkg/logger"
	"github.com/rllL1/portfolio/pkg/ratelimiter"
)

func TestRateLimit(t *testing.T) {
	limiter := ratelimiter.NewRateLimiter()
	defer limiter.Stop()
	limiter.SetPolicy(ratelimiter.NamespaceChat, 2, time.Minute)

	handler := RateLimit(limiter, ratelimiter.NamespaceChat, logger.NewTestLogger(t))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
		req.RemoteAddr = ip + ":40000"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, send("1.1.1.1").Code)
	assert.Equal(t, http.StatusOK, send("1.1.1.1").Code)

	w := send("1.1.1.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "Too many requests")

	assert.Equal(t, http.StatusOK, send("2.2.2.2").Code)
}

func TestRateLimit_IgnoresForwardedHeadersFromUntrustedPeers(t *testing.T) {
	limiter := ratelimiter.NewRateLimiter()
	defer limiter.Stop()
	limiter.SetPolicy(ratelimiter.NamespaceSignIn, 10, 15*time.Minute)

	handler := RealIP(nil)(RateLimit(limiter, ratelimiter.NamespaceSignIn, logger.NewTestLogger(t))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	))

	allowed := 0
	for i := 0; i < 100; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth.signin", nil)
		req.RemoteAddr = "198.51.100.9:5555"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.0.%d", i))
		req.Header.Set("X-Real-IP", fmt.Sprintf("10.1.0.%d", i))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		if w.Code == http.StatusOK {
			allowed++
		}
	}

	assert.Equal(t, 10, allowed)
}

func TestRealIP(t *testing.T) {
	trusted, err := ParseTrustedProxies([]string{"10.0.0.0/8", "192.0.2.1"})
	require.NoError(t, err)

	resolve := func(remote, xff, xri string) string {
		var got string
		h := RealIP(trusted)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = ClientIP(r)
		}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remote
		if xff != "" {
			req.Header.Set("X-Forwarded-For", xff)
		}
		if xri != "" {
			req.Header.Set("X-Real-IP", xri)
		}
		h.ServeHTTP(httptest.NewRecorder(), req)
		return got
	}

	tests := []struct {
		name   string
		remote string
		xff    string
		xri    string
		want   string
	}{
		{"untrusted peer ignores headers", "203.0.113.5:1", "1.1.1.1", "2.2.2.2", "203.0.113.5"},
		{"trusted peer single hop", "192.0.2.1:1", "203.0.113.7", "", "203.0.113.7"},
		{"spoofed left-most hop is skipped", "192.0.2.1:1", "6.6.6.6, 203.0.113.7", "", "203.0.113.7"},
		{"trusted hops are walked past", "10.0.0.2:1", "203.0.113.7, 10.0.0.9, 10.0.0.3", "", "203.0.113.7"},
		{"all hops trusted", "10.0.0.2:1", "10.0.0.7, 10.0.0.9", "", "10.0.0.7"},
		{"malformed hop falls back to peer", "10.0.0.2:1", "203.0.113.7, junk", "", "10.0.0.2"},
		{"real ip header from trusted peer", "10.0.0.2:1", "", "203.0.113.8", "203.0.113.8"},
		{"invalid real ip header", "10.0.0.2:1", "", "nope", "10.0.0.2"},
		{"ipv6 peer", "[2001:db8::1]:443", "1.1.1.1", "", "2001:db8::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolve(tt.remote, tt.xff, tt.xri))
		})
	}
}

func TestClientIP_WithoutRealIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.10:5555"
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	req.Header.Set("X-Real-IP", "198.51.100.2")
	assert.Equal(t, "192.0.2.10", ClientIP(req))

	req.RemoteAddr = "no-port"
	assert.Equal(t, "no-port", ClientIP(req))
}

func TestParseTrustedProxies(t *testing.T) {
	nets, err := ParseTrustedProxies([]string{"10.0.0.1", " 172.16.0.0/12 ", "", "::1"})
	require.NoError(t, err)
	require.Len(t, nets, 3)
	assert.True(t, isTrusted("10.0.0.1", nets))
	assert.False(t, isTrusted("10.0.0.2", nets))
	assert.True(t, isTrusted("172.20.1.1", nets))
	assert.True(t, isTrusted("::1", nets))

	_, err = ParseTrustedProxies([]string{"not-an-ip"})
	assert.Error(t, err)
	_, err = ParseTrustedProxies([]string{"10.0.0.0/99"})
	assert.Error(t, err)
}
