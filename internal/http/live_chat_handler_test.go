package http

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/internal/domain/mocks"
	"github.com/rllL1/portfolio/pkg/logger"
)

func TestLiveChatHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockLiveChatService(ctrl)
	mux := http.NewServeMux()
	NewLiveChatHandler(svc, newTestAuth(), newTestLimiter(t), logger.NewTestLogger(t)).RegisterRoutes(mux)
	token := adminToken(t)

	t.Run("send with auto reply", func(t *testing.T) {
		svc.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ interface{}, m *domain.ChatMessage) (*domain.SendLiveChatResult, error) {
			assert.Equal(t, domain.VisitorDisplayName, m.SenderName)
			m.ID = "m1"
			return &domain.SendLiveChatResult{
				Message: m,
				Reply: &domain.ChatMessage{
					ID:         "m2",
					SenderName: domain.AutoReplyDisplayName,
					SenderKind: domain.SenderAutoReply,
					Message:    "Thanks!",
				},
			}, nil
		})

		w := doRequest(t, mux, http.MethodPost, "/api/livechat.send", `{"message":"Hello"}`, "")
		require.Equal(t, http.StatusCreated, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, false, body["admin_online"])
		assert.Equal(t, "auto_reply", body["reply"].(map[string]interface{})["sender_kind"])
	})

	t.Run("send rejects blank", func(t *testing.T) {
		w := doRequest(t, mux, http.MethodPost, "/api/livechat.send", `{"message":""}`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("status is public", func(t *testing.T) {
		svc.EXPECT().AdminOnline(gomock.Any()).Return(true)

		w := doRequest(t, mux, http.MethodGet, "/api/livechat.status", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, decodeBody(t, w)["admin_online"])
	})

	t.Run("list requires auth", func(t *testing.T) {
		w := doRequest(t, mux, http.MethodGet, "/api/livechat.list", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("list", func(t *testing.T) {
		svc.EXPECT().ListMessages(gomock.Any()).Return([]*domain.ChatMessage{{ID: "m1"}}, nil)

		w := doRequest(t, mux, http.MethodGet, "/api/livechat.list", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody(t, w)["messages"], 1)
	})

	t.Run("reply", func(t *testing.T) {
		svc.EXPECT().Reply(gomock.Any(), gomock.Any()).DoAndReturn(func(_ interface{}, m *domain.ChatMessage) (*domain.ChatMessage, error) {
			m.ID = "m3"
			return m, nil
		})

		w := doRequest(t, mux, http.MethodPost, "/api/livechat.reply", `{"message":"Hi, Ron here"}`, token)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "admin", decodeBody(t, w)["message"].(map[string]interface{})["sender_kind"])
	})

	t.Run("reply rejects blank", func(t *testing.T) {
		w := doRequest(t, mux, http.MethodPost, "/api/livechat.reply", `{"message":"  "}`, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		svc.EXPECT().DeleteMessage(gomock.Any(), "m1").Return(nil)

		w := doRequest(t, mux, http.MethodPost, "/api/livechat.delete", `{"id":"m1"}`, token)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
