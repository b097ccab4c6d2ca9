// internal/app/features/greeting/routes.go
package greeting

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Route is a method and path served by ServeMessage.
type Route struct {
	Method string
	Path   string
}

// RouteTable lists every route that returns the message. Each call builds a
// fresh slice, so callers cannot alter the routes Routes registers.
func RouteTable() []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/hello"},
		{Method: http.MethodGet, Path: "/welcome"},
	}
}

// Routes returns a router serving the message on every RouteTable entry.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	for _, rt := range RouteTable() {
		r.Method(rt.Method, rt.Path, http.HandlerFunc(h.ServeMessage))
	}
	return r
}
