package config

import (
	"fmt"

	"gopkg.in/validator.v2"

	"github.com/andrii-androshchuk/envseed/internal/logger"
)

// AppConfig is used to configure this application
type AppConfig struct {
	LogLevel            string   `env:"LOG_LEVEL,required" envDefault:"info" validate:"logLevel"`      // LogLevel is the log level for the application
	Environment         string   `env:"APP_ENV"`                                                       // Environment is the ambient environment name the process runs under (e.g. "production")
	AllowedEnvironments []string `env:"SECRETS_ALLOWED_ENVIRONMENTS" envDefault:"production"`          // AllowedEnvironments lists the environments for which secret loading is permitted
	BasePrefix          string   `env:"SECRETS_BASE_PREFIX,notEmpty"`                                  // BasePrefix is the base secret name prefix, combined with the environment to scope the lookup
	ConfigCacheFile     string   `env:"CONFIG_CACHE_FILE"`                                             // ConfigCacheFile marks the host configuration as cached when it exists on disk
	ConfigFile          string   `env:"ENVSEED_CONFIG_FILE" envDefault:".envseed.yaml"`                // ConfigFile is the path of the optional YAML override file
}

// Initialize the validators at package import
func init() {
	err := validator.SetValidationFunc("logLevel", validateLogLevel)
	if err != nil {
		panic("error registering logLevel validator: " + err.Error())
	}
}

// validateLogLevel checks that the given value parses as a slog level.
func validateLogLevel(v interface{}, _ string) error {
	s, ok := v.(string)
	if !ok {
		return ErrInvalidLogLevel
	}

	if _, err := logger.ParseLevel(s); err != nil {
		return ErrInvalidLogLevel
	}

	return nil
}

// GetAppConfig returns the application configuration, parsed from environment
// variables and overridden by the optional YAML config file when it exists.
func GetAppConfig() (*AppConfig, error) {
	cfg := AppConfig{}

	err := ParseConfigFromEnv(&cfg, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseConfigFailed, err)
	}

	fileCfg, err := FromYAML(cfg.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseConfigFailed, err)
	}

	cfg.Apply(fileCfg)

	if len(cfg.AllowedEnvironments) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrParseConfigFailed, ErrEmptyAllowList)
	}

	return &cfg, nil
}

// Apply overrides the environment-sourced configuration with values from the
// optional config file. A nil file config leaves the configuration untouched.
func (c *AppConfig) Apply(f *FileConfig) {
	if f == nil {
		return
	}

	if len(f.AllowedEnvironments) > 0 {
		c.AllowedEnvironments = f.AllowedEnvironments
	}

	if f.BasePrefix != "" {
		c.BasePrefix = f.BasePrefix
	}

	if f.ConfigCacheFile != "" {
		c.ConfigCacheFile = f.ConfigCacheFile
	}
}
