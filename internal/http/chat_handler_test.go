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

func TestChatHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	assistant := mocks.NewMockAssistantService(ctrl)
	limiter := newTestLimiter(t)

	mux := http.NewServeMux()
	NewChatHandler(assistant, limiter, logger.NewTestLogger(t)).RegisterRoutes(mux)

	t.Run("reply", func(t *testing.T) {
		assistant.EXPECT().Ask(gomock.Any(), "What stack do you use?").Return("React and Laravel.", nil)

		w := doRequest(t, mux, http.MethodPost, "/api/chat", `{"message":"What stack do you use?"}`, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "React and Laravel.", decodeBody(t, w)["reply"])
	})

	t.Run("blank message", func(t *testing.T) {
		w := doRequest(t, mux, http.MethodPost, "/api/chat", `{"message":"   "}`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Message is required", decodeBody(t, w)["error"])
	})

	t.Run("missing key", func(t *testing.T) {
		assistant.EXPECT().Ask(gomock.Any(), gomock.Any()).Return("", domain.ErrUpstreamUnavailable)

		w := doRequest(t, mux, http.MethodPost, "/api/chat", `{"message":"hi"}`, "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "API key not configured", decodeBody(t, w)["error"])
	})

	t.Run("upstream failure", func(t *testing.T) {
		assistant.EXPECT().Ask(gomock.Any(), gomock.Any()).Return("", &domain.ErrUpstreamFailed{Provider: "gemini", Err: errors.New("quota")})

		w := doRequest(t, mux, http.MethodPost, "/api/chat", `{"message":"hi"}`, "")
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "Failed to process chat message", decodeBody(t, w)["error"])
	})

	t.Run("get is rejected", func(t *testing.T) {
		w := doRequest(t, mux, http.MethodGet, "/api/chat", nil, "")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("rate limited", func(t *testing.T) {
		limiter.SetPolicy(ratelimiter.NamespaceChat, 1, time.Minute)
		limiter.Reset(ratelimiter.NamespaceChat, "192.0.2.1")
		assistant.EXPECT().Ask(gomock.Any(), gomock.Any()).Return("ok", nil)

		assert.Equal(t, http.StatusOK, doRequest(t, mux, http.MethodPost, "/api/chat", `{"message":"hi"}`, "").Code)
		w := doRequest(t, mux, http.MethodPost, "/api/chat", `{"message":"hi"}`, "")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})
}
