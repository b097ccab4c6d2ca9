// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"os"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// EnvPrefix is the prefix for greeter environment variables, both app keys
// (GREETER_MESSAGE) and WAFFLE core keys (GREETER_HTTP_PORT, ...).
const EnvPrefix = "GREETER"

// messageEnv is the environment variable that carries the message.
const messageEnv = EnvPrefix + "_MESSAGE"

// messageUnset is the default for the message key. No real source produces
// it, so seeing it after loading means nothing supplied a message.
const messageUnset = "\x00unset"

// ErrConfigurationMissing is returned when no message was configured.
var ErrConfigurationMissing = errors.New("configuration missing: message is required")

// appConfigKeys defines the configuration keys for greeter.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: message
//   - Environment variables: GREETER_MESSAGE
//   - Command-line flags: --message
//
// The listen port and server timeouts are WAFFLE core keys (http_port,
// read_timeout, shutdown_timeout, ...), not app keys.
var appConfigKeys = []config.AppKey{
	{Name: "message", Default: messageUnset, Desc: "Text returned by /hello and /welcome (required; may be empty)"},
}

// LoadConfig loads WAFFLE core config and greeter's app config.
//
// WAFFLE merges sources with precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, EnvPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	message, set := resolveMessage(appValues.String("message"), os.LookupEnv)

	appCfg := AppConfig{
		Message:    message,
		MessageSet: set,
	}

	return coreCfg, appCfg, nil
}

// resolveMessage decides whether a message was supplied.
//
// Any value other than messageUnset came from a flag, env var or config file,
// including "". Viper skips empty environment variables, so an exported but
// empty GREETER_MESSAGE still resolves to messageUnset and is checked here.
func resolveMessage(value string, lookupEnv func(string) (string, bool)) (string, bool) {
	if value != messageUnset {
		return value, true
	}
	if v, ok := lookupEnv(messageEnv); ok {
		return v, true
	}
	return "", false
}

// ValidateConfig performs greeter-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The message content itself is never validated.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if !appCfg.MessageSet {
		logger.Error("message is not configured",
			zap.String("env", messageEnv),
			zap.String("flag", "--message"))
		return ErrConfigurationMissing
	}
	return nil
}
