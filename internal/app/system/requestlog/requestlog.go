// Package requestlog exposes the request ID to clients.
//
// WAFFLE's router already assigns the ID (chi RequestID) and writes it into
// every http_request access-log line; this package only echoes it back so a
// caller can match a response to the server's log.
package requestlog

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// HeaderRequestID is the header that carries the request ID in both
// directions. An incoming value is kept by chi's RequestID middleware.
var HeaderRequestID = middleware.RequestIDHeader

// EchoRequestID copies the request ID from the context onto the response.
// It must run after chi's RequestID middleware.
func EchoRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := middleware.GetReqID(r.Context()); id != "" {
			w.Header().Set(HeaderRequestID, id)
		}
		next.ServeHTTP(w, r)
	})
}
