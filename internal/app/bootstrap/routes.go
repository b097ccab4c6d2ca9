// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	greetingfeature "github.com/dalemusser/greeter/internal/app/features/greeting"
	healthfeature "github.com/dalemusser/greeter/internal/app/features/health"
	"github.com/dalemusser/greeter/internal/app/system/requestlog"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/metrics"
	"github.com/dalemusser/waffle/router"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router).
//
// WAFFLE calls this after configuration, Startup and the (empty) DB step.
// router.New supplies request IDs, real-IP, zap panic recovery, access
// logging, metrics and the JSON 404/405 handlers; the message is copied into
// the greeting handler here and never touched again.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := router.New(coreCfg, logger)
	r.Use(requestlog.EchoRequestID)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Prometheus scrape endpoint (collectors registered by app.Run)
	r.Handle("/metrics", metrics.Handler())

	greetingHandler := greetingfeature.NewHandler(appCfg.Message, logger)
	r.Mount("/", greetingfeature.Routes(greetingHandler))

	return r, nil
}
