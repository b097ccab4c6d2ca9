// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// DBDeps holds back-end dependencies for the app. greeter has none; the
// type exists because WAFFLE's lifecycle threads one through every hook.
type DBDeps struct{}

// ConnectDB satisfies WAFFLE's required hook. There is nothing to connect.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	return DBDeps{}, nil
}
