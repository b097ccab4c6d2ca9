// internal/app/features/greeting/handler.go
package greeting

import (
	"io"
	"net/http"

	"go.uber.org/zap"
)

// Handler serves the configured message.
//
// Message is set once at construction and only read afterwards, so a single
// Handler is safe to share across concurrent requests.
type Handler struct {
	Message string
	Log     *zap.Logger
}

// NewHandler constructs a greeting Handler for message.
func NewHandler(message string, logger *zap.Logger) *Handler {
	return &Handler{
		Message: message,
		Log:     logger,
	}
}

// ServeMessage handles GET /hello and GET /welcome.
//
// Always 200 with the message verbatim as text/plain, including when the
// message is empty.
func (h *Handler) ServeMessage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, h.Message); err != nil {
		h.Log.Warn("greeting: write failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
}
