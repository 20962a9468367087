// Package config provides configuration management for the application.
package config

import (
	"github.com/spf13/viper"
)

// Defaults applied when the environment leaves a knob unset.
const (
	DefaultPort            = "5001"
	DefaultMetricsEndpoint = "/metrics"
	DefaultBodySizeLimit   = 10 << 20 // 10MB; payloads are never read, this only caps the transport
)

// Config holds the application configuration
type Config struct {
	Server  ServerConfig
	Logging LoggingConfig
	Metrics MetricsConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port          string
	BodySizeLimit int64
}

// LoggingConfig selects the slog handler and verbosity
type LoggingConfig struct {
	Format string // "json" or "pretty"
	Level  string // "debug", "info", "warn", "error"
}

// MetricsConfig controls the Prometheus endpoint
type MetricsConfig struct {
	Enabled  bool
	Endpoint string
}

// Load reads configuration from an optional .env file and the environment
func Load() (*Config, error) {
	// Load .env file using Viper (optional, won't fail if not found)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig() // Ignore error if .env file doesn't exist

	// Set defaults
	viper.SetDefault("PORT", DefaultPort)
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("METRICS_ENABLED", true)
	viper.SetDefault("METRICS_ENDPOINT", DefaultMetricsEndpoint)
	viper.SetDefault("BODY_SIZE_LIMIT", DefaultBodySizeLimit)

	// Enable automatic environment variable reading
	viper.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Port:          viper.GetString("PORT"),
			BodySizeLimit: viper.GetInt64("BODY_SIZE_LIMIT"),
		},
		Logging: LoggingConfig{
			Format: viper.GetString("LOG_FORMAT"),
			Level:  viper.GetString("LOG_LEVEL"),
		},
		Metrics: MetricsConfig{
			Enabled:  viper.GetBool("METRICS_ENABLED"),
			Endpoint: viper.GetString("METRICS_ENDPOINT"),
		},
	}

	return cfg, nil
}
