package http

import (
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

func TestContactMessageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockContactMessageService(ctrl)
	limiter := newTestLimiter(t)
	limiter.SetPolicy(ratelimiter.NamespaceContact, 2, time.Hour)

	mux := http.NewServeMux()
	NewContactMessageHandler(svc, newTestAuth(), limiter, logger.NewTestLogger(t)).RegisterRoutes(mux)
	token := adminToken(t)

	t.Run("submit", func(t *testing.T) {
		svc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ interface{}, m *domain.ContactMessage) (*domain.ContactMessage, error) {
			assert.Equal(t, "Jane", m.Name)
			assert.Nil(t, m.Subject)
			m.ID = "c1"
			return m, nil
		})

		w := doRequest(t, mux, http.MethodPost, "/api/contact.submit",
			`{"name":"Jane","email":"jane@example.com","subject":"","message":"Hello"}`, "")
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "c1", decodeBody(t, w)["id"])
	})

	t.Run("submit validation", func(t *testing.T) {
		w := doRequest(t, mux, http.MethodPost, "/api/contact.submit", `{"name":"Jane","email":"nope","message":"Hello"}`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("submit rate limited", func(t *testing.T) {
		w := doRequest(t, mux, http.MethodPost, "/api/contact.submit", `{}`, "")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})

	t.Run("list requires auth", func(t *testing.T) {
		w := doRequest(t, mux, http.MethodGet, "/api/messages.list", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("list", func(t *testing.T) {
		svc.EXPECT().ListMessages(gomock.Any()).Return([]*domain.ContactMessage{{ID: "c1"}, {ID: "c0"}}, nil)

		w := doRequest(t, mux, http.MethodGet, "/api/messages.list", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody(t, w)["messages"], 2)
	})

	t.Run("mark read missing", func(t *testing.T) {
		svc.EXPECT().MarkRead(gomock.Any(), "c9").Return(domain.NewNotFound("contact message", "c9"))

		w := doRequest(t, mux, http.MethodPost, "/api/messages.mark_read", `{"id":"c9"}`, token)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete requires id", func(t *testing.T) {
		w := doRequest(t, mux, http.MethodPost, "/api/messages.delete", `{}`, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		svc.EXPECT().DeleteMessage(gomock.Any(), "c1").Return(nil)

		w := doRequest(t, mux, http.MethodPost, "/api/messages.delete", `{"id":"c1"}`, token)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestDashboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockDashboardService(ctrl)
	mux := http.NewServeMux()
	NewDashboardHandler(svc, newTestAuth(), logger.NewTestLogger(t)).RegisterRoutes(mux)

	svc.EXPECT().GetStats(gomock.Any()).Return(&domain.DashboardStats{
		Projects:       3,
		Skills:         12,
		Messages:       5,
		UnreadMessages: 2,
		RecentMessages: []*domain.ContactMessage{},
	}, nil)

	w := doRequest(t, mux, http.MethodGet, "/api/dashboard.stats", nil, adminToken(t))
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(3), body["projects"])
	assert.Equal(t, float64(2), body["unread_messages"])
	assert.Equal(t, []interface{}{}, body["recent_messages"])
}
