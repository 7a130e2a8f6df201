// Package config holds the runtime configuration of the whitebox binary.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/whitebox/pkg/config"
	"github.com/dmitrymomot/whitebox/pkg/file"
	"github.com/dmitrymomot/whitebox/pkg/httpserver"
	"github.com/dmitrymomot/whitebox/pkg/logger"
)

// Config is read from the environment and an optional .env file.
type Config struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	AppName   string `env:"APP_NAME" envDefault:"whitebox"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	FetchTimeout    time.Duration `env:"FETCH_TIMEOUT" envDefault:"10s"`
	ActionThreshold int64         `env:"ACTION_THRESHOLD" envDefault:"10"`
	FileEncoding    string        `env:"FILE_ENCODING" envDefault:"utf-8"`
	FileBaseDir     string        `env:"FILE_BASE_DIR"`

	ProxyHeaders []string `env:"HTTP_PROXY_HEADERS" envSeparator:"," envDefault:"X-Forwarded-For,X-Real-IP"`

	HTTP httpserver.Config
}

// Load reads the configuration and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Validate rejects values that would otherwise fail later at startup.
func (c Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: LOG_LEVEL: %w", config.ErrParsingConfig, err)
	}
	switch logger.Format(c.LogFormat) {
	case logger.FormatJSON, logger.FormatText:
	default:
		return fmt.Errorf("%w: LOG_FORMAT: unknown format %q", config.ErrParsingConfig, c.LogFormat)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("%w: FETCH_TIMEOUT must be positive", config.ErrParsingConfig)
	}
	if _, err := file.LookupEncoding(c.FileEncoding); err != nil {
		return fmt.Errorf("%w: FILE_ENCODING: %w", config.ErrParsingConfig, err)
	}
	return nil
}

// Logger builds the application logger described by the config. The
// environment preset is applied first, so LOG_LEVEL and LOG_FORMAT win.
func (c Config) Logger(opts ...logger.Option) *slog.Logger {
	base := []logger.Option{
		logger.WithEnvironment(c.Env, c.AppName),
		logger.WithLevelName(c.LogLevel),
		logger.WithFormat(logger.Format(c.LogFormat)),
	}
	return logger.New(append(base, opts...)...)
}

// FileOptions returns the reader options described by the config.
func (c Config) FileOptions() []file.LocalOption {
	opts := []file.LocalOption{file.WithEncoding(c.FileEncoding)}
	if c.FileBaseDir != "" {
		opts = append(opts, file.WithBaseDir(c.FileBaseDir))
	}
	return opts
}
