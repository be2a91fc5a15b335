package service

import (
	"context"
	"fmt"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/pkg/logger"
)

// AdminAuthService delegates credentials to the hosted auth API and keeps presence in sync
type AdminAuthService struct {
	provider domain.AuthProvider
	presence domain.PresenceTracker
	logger   logger.Logger
}

func NewAdminAuthService(provider domain.AuthProvider, presence domain.PresenceTracker, logger logger.Logger) *AdminAuthService {
	return &AdminAuthService{
		provider: provider,
		presence: presence,
		logger:   logger,
	}
}

func (s *AdminAuthService) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	session, err := s.provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		s.logger.WithField("email", email).Warn(fmt.Sprintf("Sign in failed: %v", err))
		return nil, err
	}

	if session.User != nil {
		s.presence.Touch(session.User.ID)
	}
	return session, nil
}

func (s *AdminAuthService) GetSession(ctx context.Context, accessToken string) (*domain.AdminUser, error) {
	user, err := s.provider.GetUser(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	s.presence.Touch(user.ID)
	return user, nil
}

// SignOut clears presence even when the provider call fails
func (s *AdminAuthService) SignOut(ctx context.Context, accessToken, userID string) error {
	s.presence.Clear(userID)

	if err := s.provider.SignOut(ctx, accessToken); err != nil {
		s.logger.WithField("user_id", userID).Warn(fmt.Sprintf("Sign out failed: %v", err))
		return err
	}
	return nil
}
