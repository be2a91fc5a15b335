package domain

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_auth_service.go -package mocks github.com/rllL1/portfolio/internal/domain AuthService
//go:generate mockgen -destination mocks/mock_auth_provider.go -package mocks github.com/rllL1/portfolio/internal/domain AuthProvider
//go:generate mockgen -destination mocks/mock_presence_tracker.go -package mocks github.com/rllL1/portfolio/internal/domain PresenceTracker

// HTTPClient is the part of *http.Client the hosted API clients use
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// AdminUser is the hosted auth user signed into the dashboard
type AdminUser struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Role         string     `json:"role,omitempty"`
	LastSignInAt *time.Time `json:"last_sign_in_at,omitempty"`
}

// Session mirrors the token grant of the hosted auth API
type Session struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
	TokenType    string     `json:"token_type"`
	ExpiresIn    int        `json:"expires_in"`
	ExpiresAt    time.Time  `json:"expires_at"`
	User         *AdminUser `json:"user"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *SignInRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" {
		return NewValidationError("email is required")
	}
	if !govalidator.IsEmail(r.Email) {
		return NewValidationError("email is invalid")
	}
	if r.Password == "" {
		return NewValidationError("password is required")
	}
	return nil
}

// AuthProvider is the hosted auth API
type AuthProvider interface {
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	GetUser(ctx context.Context, accessToken string) (*AdminUser, error)
	SignOut(ctx context.Context, accessToken string) error
}

type AuthService interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	GetSession(ctx context.Context, accessToken string) (*AdminUser, error)
	SignOut(ctx context.Context, accessToken, userID string) error
}

// PresenceTracker approximates "admin online" from recent authenticated activity.
// It is not a presence protocol: an admin who closes the tab stays online until the TTL lapses.
type PresenceTracker interface {
	Touch(userID string)
	Clear(userID string)
	AnyOnline() bool
}
