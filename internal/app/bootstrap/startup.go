// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time initialization after config validation and before
// the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	logger.Info("greeter starting",
		zap.String("env", coreCfg.Env),
		zap.Int("http_port", coreCfg.HTTP.HTTPPort),
		zap.Int("message_bytes", len(appCfg.Message)),
		zap.Duration("read_timeout", coreCfg.HTTP.ReadTimeout),
		zap.Duration("write_timeout", coreCfg.HTTP.WriteTimeout),
		zap.Duration("shutdown_timeout", coreCfg.HTTP.ShutdownTimeout),
	)
	return nil
}
