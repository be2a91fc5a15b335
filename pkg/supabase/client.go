package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/pkg/logger"
	"github.com/rllL1/portfolio/pkg/tracing"
)

const providerName = "supabase auth"

// maxErrorBody bounds how much of an error response is read
const maxErrorBody = 64 * 1024

// AuthClient talks to the GoTrue REST API of a Supabase project
type AuthClient struct {
	baseURL    string
	anonKey    string
	httpClient domain.HTTPClient
	logger     logger.Logger
}

// NewAuthClient builds a client for projectURL (e.g. https://xyz.supabase.co).
// A nil httpClient gets a traced client with a 15s timeout.
func NewAuthClient(projectURL, anonKey string, httpClient domain.HTTPClient, log logger.Logger) *AuthClient {
	if httpClient == nil {
		httpClient = tracing.WrapHTTPClient(&http.Client{Timeout: 15 * time.Second})
	}
	return &AuthClient{
		baseURL:    strings.TrimRight(projectURL, "/") + "/auth/v1",
		anonKey:    anonKey,
		httpClient: httpClient,
		logger:     log,
	}
}

type gotrueUser struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	LastSignInAt *time.Time `json:"last_sign_in_at"`
}

func (u *gotrueUser) toDomain() *domain.AdminUser {
	if u == nil {
		return nil
	}
	return &domain.AdminUser{
		ID:           u.ID,
		Email:        u.Email,
		Role:         u.Role,
		LastSignInAt: u.LastSignInAt,
	}
}

type tokenResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	TokenType    string      `json:"token_type"`
	ExpiresIn    int         `json:"expires_in"`
	ExpiresAt    int64       `json:"expires_at"`
	User         *gotrueUser `json:"user"`
}

// SignInWithPassword exchanges email/password for a session
func (c *AuthClient) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, fmt.Errorf("failed to encode sign-in request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/token?grant_type=password", "", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.errorFromResponse(resp)
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, &domain.ErrUpstreamFailed{Provider: providerName, Err: fmt.Errorf("invalid token response: %w", err)}
	}
	if token.AccessToken == "" {
		return nil, &domain.ErrUpstreamFailed{Provider: providerName, Err: errors.New("token response has no access token")}
	}

	session := &domain.Session{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		ExpiresIn:    token.ExpiresIn,
		User:         token.User.toDomain(),
	}
	if token.ExpiresAt > 0 {
		session.ExpiresAt = time.Unix(token.ExpiresAt, 0).UTC()
	} else {
		session.ExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second).UTC()
	}
	return session, nil
}

// GetUser returns the user owning accessToken
func (c *AuthClient) GetUser(ctx context.Context, accessToken string) (*domain.AdminUser, error) {
	resp, err := c.do(ctx, http.MethodGet, "/user", accessToken, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.errorFromResponse(resp)
	}

	var user gotrueUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, &domain.ErrUpstreamFailed{Provider: providerName, Err: fmt.Errorf("invalid user response: %w", err)}
	}
	if user.ID == "" {
		return nil, domain.ErrUnauthorized
	}
	return user.toDomain(), nil
}

// SignOut revokes the session of accessToken
func (c *AuthClient) SignOut(ctx context.Context, accessToken string) error {
	resp, err := c.do(ctx, http.MethodPost, "/logout", accessToken, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return c.errorFromResponse(resp)
	}
	return nil
}

func (c *AuthClient) do(ctx context.Context, method, path, accessToken string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithFields(map[string]interface{}{
			"error": err.Error(),
			"path":  path,
		}).Error("Auth API request failed")
		return nil, &domain.ErrUpstreamFailed{Provider: providerName, Err: err}
	}
	return resp, nil
}

// errorFromResponse maps rejected credentials/tokens to ErrUnauthorized and the rest to ErrUpstreamFailed
func (c *AuthClient) errorFromResponse(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	message := errorMessage(raw)
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, message)
	default:
		c.logger.WithFields(map[string]interface{}{
			"status":  resp.StatusCode,
			"message": message,
		}).Warn("Auth API returned an error")
		return &domain.ErrUpstreamFailed{
			Provider: providerName,
			Err:      fmt.Errorf("status %d: %s", resp.StatusCode, message),
		}
	}
}

// errorMessage reads the GoTrue error formats: {msg}, {error_description}, {message}, {error}
func errorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return strings.TrimSpace(string(body))
	}
	for _, path := range []string{"msg", "error_description", "message", "error"} {
		if v := gjson.GetBytes(body, path); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	return ""
}
