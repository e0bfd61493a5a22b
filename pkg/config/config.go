package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Environment name constants used in ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Config holds all configuration for the application
type Config struct {
	// Application
	LogLevel    string `conf:"default:info,env:LOG_LEVEL"`
	Environment string `conf:"default:development,enum:development|testing|production,env:ENVIRONMENT"`

	// Serial allocation. The start applies once per process; reset is a
	// test-isolation hook and must stay off outside tests.
	SerialStart        int  `conf:"default:1337,env:SERIAL_START"`
	SerialResetEnabled bool `conf:"default:false,env:SERIAL_RESET_ENABLED"`

	// Events: output buffer of each in-process subscriber channel
	EventBufferSize int `conf:"default:64,env:EVENT_BUFFER_SIZE"`

	// Observability
	ServiceName    string `conf:"default:freightbox,env:SERVICE_NAME"`
	ServiceVersion string `conf:"default:dev,env:SERVICE_VERSION"`
	OtelEndpoint   string `conf:"env:OTEL_ENDPOINT"`
	SentryDSN      string `conf:"env:SENTRY_DSN,noprint"`
}

// Load reads configuration from environment variables with sensible defaults.
// Command-line flags belong to the CLI, so they are hidden from conf.
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()

	args := os.Args
	os.Args = args[:1]
	defer func() { os.Args = args }()

	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// ValidateForProduction enforces safety requirements when ENVIRONMENT=production.
// Returns an error if any critical settings are unsafe.
// No-ops for non-production environments.
func ValidateForProduction(cfg *Config) error {
	if cfg.Environment != EnvProduction {
		return nil
	}

	var errs []string

	if cfg.SerialResetEnabled {
		errs = append(errs, "SERIAL_RESET_ENABLED must be false in production (reset can reissue serials)")
	}

	if cfg.LogLevel == "debug" {
		errs = append(errs, "LOG_LEVEL must not be 'debug' in production (may leak sensitive data)")
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("production config validation failed: %s", strings.Join(errs, "; "))
}
