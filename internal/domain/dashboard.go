package domain

import "context"

//go:generate mockgen -destination mocks/mock_dashboard_service.go -package mocks github.com/rllL1/portfolio/internal/domain DashboardService

// DashboardStats backs the admin overview cards
type DashboardStats struct {
	Projects       int               `json:"projects"`
	Skills         int               `json:"skills"`
	Messages       int               `json:"messages"`
	UnreadMessages int               `json:"unread_messages"`
	ChatMessages   int               `json:"chat_messages"`
	RecentMessages []*ContactMessage `json:"recent_messages"`
}

type DashboardService interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
}
