// Package config loads process configuration from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"crypto_backend/internal/platform/externalapi/coingecko"
)

// StatusMode controls which HTTP status is returned for failed coin lookups.
type StatusMode string

const (
	// StatusModeCompat always answers 200 and signals failure only through the body.
	StatusModeCompat StatusMode = "compat"
	// StatusModeStrict maps failure kinds to 404, 422 and 502.
	StatusModeStrict StatusMode = "strict"
)

// Config is the full process configuration.
type Config struct {
	Port            string
	GinMode         string
	LogLevel        slog.Level
	LogFormat       string // "json" or "text"
	CORSOrigins     []string
	StatusMode      StatusMode
	ShutdownTimeout time.Duration
	CoinGecko       coingecko.Config
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads .env (if present) and then the environment.
// Environment variables always win over .env entries.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load .env: %w", err)
		}
		slog.Info(".env not found; using system environment variables")
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "5000")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("RESPONSE_STATUS_MODE", string(StatusModeCompat))
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("COINGECKO_API_KEY", "")
	v.SetDefault("COINGECKO_BASE_URL", coingecko.DefaultBaseURL)
	v.SetDefault("COINGECKO_TIMEOUT", coingecko.DefaultTimeout.String())
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	format := strings.ToLower(v.GetString("LOG_FORMAT"))
	if format != "json" && format != "text" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: want json or text", format)
	}

	mode := StatusMode(strings.ToLower(v.GetString("RESPONSE_STATUS_MODE")))
	if mode != StatusModeCompat && mode != StatusModeStrict {
		return nil, fmt.Errorf("invalid RESPONSE_STATUS_MODE %q: want compat or strict", mode)
	}

	ginMode := strings.ToLower(v.GetString("GIN_MODE"))
	if ginMode != "debug" && ginMode != "release" && ginMode != "test" {
		return nil, fmt.Errorf("invalid GIN_MODE %q: want debug, release or test", ginMode)
	}

	timeout := v.GetDuration("COINGECKO_TIMEOUT")
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid COINGECKO_TIMEOUT %q", v.GetString("COINGECKO_TIMEOUT"))
	}

	return &Config{
		Port:            v.GetString("PORT"),
		GinMode:         ginMode,
		LogLevel:        level,
		LogFormat:       format,
		CORSOrigins:     splitList(v.GetString("CORS_ALLOW_ORIGINS")),
		StatusMode:      mode,
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		CoinGecko: coingecko.Config{
			APIKey:  strings.TrimSpace(v.GetString("COINGECKO_API_KEY")),
			BaseURL: v.GetString("COINGECKO_BASE_URL"),
			Timeout: timeout,
		},
	}, nil
}

// splitList splits a comma-separated value and drops empty entries.
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
