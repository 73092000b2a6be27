package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type (
	Config struct {
		HTTP    HTTP
		Storage Storage
		Log     Log
	}

	HTTP struct {
		Port            string        `env:"PORT" envDefault:"8080"`
		MaxUploadBytes  int64         `env:"MAX_UPLOAD_BYTES" envDefault:"20971520"`
		ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	}

	Storage struct {
		// DataDir is the root holding images/ and app.db. Empty means
		// app_data next to the executable.
		DataDir string `env:"DATA_DIR"`
	}

	Log struct {
		Level      string `env:"LOG_LEVEL" envDefault:"info"`
		File       string `env:"LOG_FILE"`
		MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"10"`
		MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
		MaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" envDefault:"28"`
	}
)

// New reads the configuration from the environment.
func New() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	if cfg.HTTP.MaxUploadBytes <= 0 {
		return nil, fmt.Errorf("config error: MAX_UPLOAD_BYTES must be positive, got %d", cfg.HTTP.MaxUploadBytes)
	}
	if _, err := cfg.Log.SlogLevel(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return cfg, nil
}

// SlogLevel maps LOG_LEVEL onto a slog.Level.
func (l Log) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", l.Level)
	}
	return level, nil
}
