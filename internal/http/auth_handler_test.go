package http

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/internal/domain/mocks"
	"github.com/rllL1/portfolio/pkg/logger"
	"github.com/rllL1/portfolio/pkg/ratelimiter"
)

func TestAuthHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockAuthService(ctrl)
	limiter := newTestLimiter(t)
	limiter.SetPolicy(ratelimiter.NamespaceSignIn, 2, 15*time.Minute)

	mux := http.NewServeMux()
	NewAuthHandler(svc, newTestAuth(), limiter, logger.NewTestLogger(t)).RegisterRoutes(mux)
	token := adminToken(t)

	t.Run("sign in validation", func(t *testing.T) {
		w := doRequest(t, mux, http.MethodPost, "/api/auth.signin", `{"email":"admin@example.com"}`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "password is required", decodeBody(t, w)["error"])
	})

	t.Run("wrong password", func(t *testing.T) {
		svc.EXPECT().SignIn(gomock.Any(), "admin@example.com", "bad").Return(nil, domain.ErrUnauthorized)

		w := doRequest(t, mux, http.MethodPost, "/api/auth.signin", `{"email":"admin@example.com","password":"bad"}`, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid email or password", decodeBody(t, w)["error"])
	})

	t.Run("limited after repeated failures", func(t *testing.T) {
		w := doRequest(t, mux, http.MethodPost, "/api/auth.signin", `{"email":"admin@example.com","password":"bad"}`, "")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})

	t.Run("success resets the limiter", func(t *testing.T) {
		limiter.Reset(ratelimiter.NamespaceSignIn, "192.0.2.1")
		svc.EXPECT().SignIn(gomock.Any(), "admin@example.com", "secret").Return(&domain.Session{
			AccessToken: "access",
			User:        &domain.AdminUser{ID: "admin-1"},
		}, nil)

		w := doRequest(t, mux, http.MethodPost, "/api/auth.signin", `{"email":"admin@example.com","password":"secret"}`, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "access", decodeBody(t, w)["access_token"])
		assert.True(t, limiter.Allow(ratelimiter.NamespaceSignIn, "192.0.2.1"))
	})

	t.Run("session", func(t *testing.T) {
		svc.EXPECT().GetSession(gomock.Any(), token).Return(&domain.AdminUser{ID: "admin-1", Email: "admin@example.com"}, nil)

		w := doRequest(t, mux, http.MethodGet, "/api/auth.session", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "admin@example.com", decodeBody(t, w)["user"].(map[string]interface{})["email"])
	})

	t.Run("revoked session", func(t *testing.T) {
		svc.EXPECT().GetSession(gomock.Any(), token).Return(nil, domain.ErrUnauthorized)

		w := doRequest(t, mux, http.MethodGet, "/api/auth.session", nil, token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("sign out", func(t *testing.T) {
		svc.EXPECT().SignOut(gomock.Any(), token, "admin-1").Return(nil)

		w := doRequest(t, mux, http.MethodPost, "/api/auth.signout", nil, token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("sign out failure", func(t *testing.T) {
		svc.EXPECT().SignOut(gomock.Any(), token, "admin-1").Return(errors.New("network"))

		w := doRequest(t, mux, http.MethodPost, "/api/auth.signout", nil, token)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
