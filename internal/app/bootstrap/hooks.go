// internal/app/bootstrap/hooks.go
package bootstrap

import (
	"github.com/dalemusser/waffle/app"
)

// Hooks wires the app into WAFFLE's lifecycle.
//
// WAFFLE owns logging, shutdown signals and the HTTP listener; a taken
// http_port comes back from app.Run as a wrapped *net.OpError.
var Hooks = app.Hooks[AppConfig, DBDeps]{
	Name:           "greeter",
	LoadConfig:     LoadConfig,
	ValidateConfig: ValidateConfig,
	ConnectDB:      ConnectDB,
	Startup:        Startup,
	BuildHandler:   BuildHandler,
	Shutdown:       Shutdown,
}
