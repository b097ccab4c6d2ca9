package bootstrap

import (
	"net/http"
	"testing"

	"github.com/dalemusser/greeter/internal/testutil"
	"github.com/dalemusser/waffle/config"
)

func testCoreConfig() *config.CoreConfig {
	coreCfg := &config.CoreConfig{Env: "dev", LogLevel: "debug"}
	coreCfg.MaxRequestBodyBytes = 2 << 20
	return coreCfg
}

func newTestRouter(t *testing.T, message string) http.Handler {
	t.Helper()
	appCfg := AppConfig{Message: message, MessageSet: true}
	h, err := BuildHandler(testCoreConfig(), appCfg, DBDeps{}, testLogger())
	if err != nil {
		t.Fatalf("BuildHandler failed: %v", err)
	}
	return h
}

func TestBuildHandler_GreetingRoutes(t *testing.T) {
	router := newTestRouter(t, "Hello, World!")

	for _, path := range []string{"/hello", "/welcome"} {
		rec := testutil.Serve(router, "GET", path)
		rec.AssertStatus(t, http.StatusOK)
		rec.AssertBody(t, "Hello, World!")
		rec.AssertContentType(t, "text/plain")
		if rec.Header().Get("X-Request-ID") == "" {
			t.Errorf("GET %s: missing X-Request-ID header", path)
		}
	}
}

func TestBuildHandler_UnknownPath(t *testing.T) {
	router := newTestRouter(t, "Hello, World!")

	for _, path := range []string{"/nonexistent", "/", "/hello/extra"} {
		rec := testutil.Serve(router, "GET", path)
		if rec.Code != http.StatusNotFound {
			t.Errorf("GET %s: got status %d, want %d", path, rec.Code, http.StatusNotFound)
		}
	}
}

func TestBuildHandler_WrongMethod(t *testing.T) {
	router := newTestRouter(t, "Hello, World!")

	rec := testutil.Serve(router, "POST", "/hello")
	rec.AssertStatus(t, http.StatusMethodNotAllowed)
}

func TestBuildHandler_Health(t *testing.T) {
	router := newTestRouter(t, "Hello, World!")

	rec := testutil.Serve(router, "GET", "/health")
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"status":"ok"`)
}

func TestBuildHandler_Metrics(t *testing.T) {
	router := newTestRouter(t, "Hello, World!")

	testutil.Serve(router, "GET", "/hello")
	rec := testutil.Serve(router, "GET", "/metrics")
	rec.AssertStatus(t, http.StatusOK)
}

func TestBuildHandler_EmptyMessage(t *testing.T) {
	router := newTestRouter(t, "")

	rec := testutil.Serve(router, "GET", "/hello")
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertBody(t, "")
}
