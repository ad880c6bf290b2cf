package server

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

const (
	ErrTypeValidation  = "validation_error"
	ErrTypeNotFound    = "not_found"
	ErrTypeRateLimited = "rate_limited"
	ErrTypeUnavailable = "unavailable"
	ErrTypeInternal    = "internal_error"
)

// APIError is the body of every non-2xx response.
type APIError struct {
	Type      string         `json:"type"`
	Message   string         `json:"message"`
	Context   map[string]any `json:"context,omitempty"`
	RequestID string         `json:"requestId,omitempty"`
}

func (e APIError) Error() string { return e.Type + ": " + e.Message }

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, errType, message string, ctx map[string]any) {
	if status >= 500 {
		s.logger.Printf("%s %s: %s", r.Method, r.URL.Path, message)
	}
	s.writeJSON(w, status, APIError{
		Type:      errType,
		Message:   message,
		Context:   ctx,
		RequestID: middleware.GetReqID(r.Context()),
	})
}
