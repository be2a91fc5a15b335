package http

import (
	"errors"
	"net/http"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/internal/http/middleware"
	"github.com/rllL1/portfolio/pkg/logger"
	"github.com/rllL1/portfolio/pkg/ratelimiter"
)

// AuthHandler exposes the hosted auth sign in flow to the admin dashboard
type AuthHandler struct {
	service     domain.AuthService
	auth        *middleware.AuthConfig
	rateLimiter *ratelimiter.RateLimiter
	logger      logger.Logger
}

func NewAuthHandler(service domain.AuthService, auth *middleware.AuthConfig, rateLimiter *ratelimiter.RateLimiter, logger logger.Logger) *AuthHandler {
	return &AuthHandler{
		service:     service,
		auth:        auth,
		rateLimiter: rateLimiter,
		logger:      logger,
	}
}

func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := h.auth.RequireAuth()
	limit := middleware.RateLimit(h.rateLimiter, ratelimiter.NamespaceSignIn, h.logger)

	mux.Handle("/api/auth.signin", limit(http.HandlerFunc(h.handleSignIn)))
	mux.Handle("/api/auth.session", requireAuth(http.HandlerFunc(h.handleSession)))
	mux.Handle("/api/auth.signout", requireAuth(http.HandlerFunc(h.handleSignOut)))
}

func (h *AuthHandler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req domain.SignInRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, h.logger, err, "sign in")
		return
	}

	session, err := h.service.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			WriteJSONError(w, "Invalid email or password", http.StatusUnauthorized)
			return
		}
		writeServiceError(w, h.logger, err, "sign in")
		return
	}

	h.rateLimiter.Reset(ratelimiter.NamespaceSignIn, middleware.ClientIP(r))
	WriteJSON(w, http.StatusOK, session)
}

func (h *AuthHandler) handleSession(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	user, err := h.service.GetSession(r.Context(), middleware.GetAccessToken(r.Context()))
	if err != nil {
		writeServiceError(w, h.logger, err, "load session")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"user": user,
	})
}

func (h *AuthHandler) handleSignOut(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	user, _ := middleware.GetAuthenticatedUser(r.Context())
	userID := ""
	if user != nil {
		userID = user.ID
	}

	if err := h.service.SignOut(r.Context(), middleware.GetAccessToken(r.Context()), userID); err != nil {
		writeServiceError(w, h.logger, err, "sign out")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
