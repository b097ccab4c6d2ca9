// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds greeter-specific configuration.
//
// Values come from environment variables (GREETER_*), config.* files, or
// command-line flags, loaded in LoadConfig. WAFFLE's CoreConfig carries the
// framework-level settings: http_port, server timeouts, log_level, env.
//
// AppConfig is built once at startup and passed by value, so handlers only
// ever see a read-only copy.
type AppConfig struct {
	// Message is returned verbatim by every greeting route. It may be empty.
	Message string

	// MessageSet reports whether a message was supplied at all. An unset
	// message aborts startup with ErrConfigurationMissing.
	MessageSet bool
}
