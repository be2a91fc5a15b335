package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rllL1/portfolio/internal/domain"
)

type contextKey string

const (
	AuthUserKey    contextKey = "auth_user"
	AccessTokenKey contextKey = "access_token"
)

// supabaseAudience is the aud claim of tokens issued to signed-in users
const supabaseAudience = "authenticated"

// AuthenticatedUser represents a user that has been authenticated
type AuthenticatedUser struct {
	ID    string
	Email string
	Role  string
}

// SupabaseClaims are the claims of a hosted auth access token
type SupabaseClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// AuthConfig verifies hosted auth access tokens locally with the project JWT secret
type AuthConfig struct {
	secret   []byte
	presence domain.PresenceTracker
}

// NewAuthMiddleware creates a new auth middleware. presence may be nil.
func NewAuthMiddleware(jwtSecret string, presence domain.PresenceTracker) *AuthConfig {
	return &AuthConfig{
		secret:   []byte(jwtSecret),
		presence: presence,
	}
}

// RequireAuth rejects requests without a valid access token and records admin presence
func (ac *AuthConfig) RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := BearerToken(r)
			if err != nil {
				writeJSONError(w, err.Error(), http.StatusUnauthorized)
				return
			}

			claims, err := ac.ParseToken(token)
			if err != nil {
				writeJSONError(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			user := &AuthenticatedUser{
				ID:    claims.Subject,
				Email: claims.Email,
				Role:  claims.Role,
			}
			if ac.presence != nil {
				ac.presence.Touch(user.ID)
			}

			ctx := context.WithValue(r.Context(), AuthUserKey, user)
			ctx = context.WithValue(ctx, AccessTokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ParseToken validates signature, expiry and audience and returns the claims
func (ac *AuthConfig) ParseToken(token string) (*SupabaseClaims, error) {
	claims := &SupabaseClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return ac.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(supabaseAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	return claims, nil
}

// BearerToken reads the Authorization header. EventSource clients cannot set headers,
// so the access_token query parameter is accepted as well.
func BearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		if token := r.URL.Query().Get("access_token"); token != "" {
			return token, nil
		}
		return "", errors.New("Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errors.New("Invalid authorization header format")
	}
	return parts[1], nil
}

// GetAuthenticatedUser returns the user set by RequireAuth
func GetAuthenticatedUser(ctx context.Context) (*AuthenticatedUser, bool) {
	user, ok := ctx.Value(AuthUserKey).(*AuthenticatedUser)
	return user, ok
}

// GetAccessToken returns the raw token verified by RequireAuth
func GetAccessToken(ctx context.Context) string {
	token, _ := ctx.Value(AccessTokenKey).(string)
	return token
}
