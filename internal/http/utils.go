package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/pkg/logger"
)

// maxJSONBody bounds every decoded request body
const maxJSONBody = 1 << 20

// WriteJSONError writes a JSON error response with the given message and status code.
// It sets the Content-Type header to application/json and automatically formats
// the response as {"error": "message"}.
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// WriteJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// allowMethod writes 405 and returns false when r uses another method
func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// decodeJSON reads a bounded JSON body into v
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	return nil
}

// writeServiceError maps domain errors to status codes. Anything unexpected is logged
// and reported as "Failed to <action>".
func writeServiceError(w http.ResponseWriter, log logger.Logger, err error, action string) {
	var validation domain.ValidationError
	var upstream *domain.ErrUpstreamFailed

	switch {
	case errors.As(err, &validation):
		WriteJSONError(w, validation.Message, http.StatusBadRequest)
	case domain.IsNotFound(err):
		WriteJSONError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrUnauthorized):
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
	case errors.Is(err, domain.ErrStorageNotConfigured):
		WriteJSONError(w, err.Error(), http.StatusServiceUnavailable)
	case errors.As(err, &upstream):
		log.WithField("error", err.Error()).Error("Upstream request failed")
		WriteJSONError(w, fmt.Sprintf("Failed to %s", action), http.StatusBadGateway)
	default:
		log.WithField("error", err.Error()).Error(fmt.Sprintf("Failed to %s", action))
		WriteJSONError(w, fmt.Sprintf("Failed to %s", action), http.StatusInternalServerError)
	}
}
