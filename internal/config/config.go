// Package config loads the service configuration from the environment.
//
// Variables carry the INTAKE_ prefix and a double underscore separates
// nesting levels:
//
//	INTAKE_PRIMARY__ENV=production          -> primary.env
//	INTAKE_SERVER__READ_TIMEOUT=10          -> server.read_timeout
//	INTAKE_OBSERVABILITY__LOGGING__LEVEL=debug
//
// A `.env` file in the working directory is loaded first, if present.
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	// EnvPrefix is the prefix of every variable the service reads.
	EnvPrefix = "INTAKE_"

	// ServiceName labels logs and traces.
	ServiceName = "intake"
)

// Config is the root configuration object.
//
// Observability is optional; defaults are injected when it is absent.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups the HTTP server settings. Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,gt=0"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,gt=0"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,gt=0"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`

	// RateLimit is the number of requests per second allowed per client IP.
	RateLimit float64 `koanf:"rate_limit" validate:"gt=0"`
}

// listKeys are the settings given as comma-separated lists:
//
//	INTAKE_SERVER__CORS_ALLOWED_ORIGINS=https://a.example,https://b.example
var listKeys = map[string]bool{
	"server.cors_allowed_origins": true,
}

func splitList(value string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// DefaultServerConfig is used for every server setting left unset.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:               "8080",
		ReadTimeout:        30,
		WriteTimeout:       30,
		IdleTimeout:        60,
		CORSAllowedOrigins: []string{"*"},
		RateLimit:          20,
	}
}

// LoadConfig reads the environment into a validated Config.
//
// Behavior summary:
//   - loads INTAKE_ variables, mapping "__" to nesting and splitting list
//     values on commas
//   - unmarshals them over DefaultServerConfig and DefaultObservabilityConfig
//   - forces the observability service name and environment
//   - validates struct tags, then the observability rules
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(s, value string) (string, interface{}) {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		key = strings.ReplaceAll(key, "__", ".")

		if listKeys[key] {
			return key, splitList(value)
		}
		return key, value
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not load env variables")
	}

	mainConfig := &Config{
		Server:        DefaultServerConfig(),
		Observability: DefaultObservabilityConfig(),
	}

	// Only keys present in the environment overwrite the defaults above.
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal main config")
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid observability config")
	}

	return mainConfig, nil
}
