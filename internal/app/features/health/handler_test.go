package health_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dalemusser/greeter/internal/app/features/health"
	"github.com/dalemusser/greeter/internal/testutil"
	"go.uber.org/zap"
)

func TestServe_OK(t *testing.T) {
	handler := health.NewHandler(zap.NewNop())

	rec := testutil.Serve(health.Routes(handler), "GET", "/")

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContentType(t, "application/json")

	var response struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response.Status != "ok" {
		t.Errorf("status: got %q, want %q", response.Status, "ok")
	}
}
