// Package config loads the server configuration from the environment
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/mcoot/mtarp-portal/internal/viewmodel"
)

// Config holds every setting of the portal server
type Config struct {
	AuthEndpoint string        `env:"MTARP_AUTH_ENDPOINT" validate:"required,url"`
	AuthTimeout  time.Duration `env:"MTARP_AUTH_TIMEOUT" envDefault:"30s" validate:"gte=0"`

	Host string `env:"MTARP_HOST"`
	Port int    `env:"MTARP_PORT" envDefault:"8080" validate:"min=1,max=65535"`

	StorageType  string        `env:"MTARP_STORAGE_TYPE" envDefault:"memory" validate:"oneof=memory redis"`
	RedisURL     string        `env:"MTARP_REDIS_URL" validate:"required_if=StorageType redis"`
	ViewStateTTL time.Duration `env:"MTARP_VIEW_STATE_TTL" envDefault:"24h" validate:"gt=0"`

	// StaticDir is served under /static/ when set
	StaticDir string `env:"MTARP_STATIC_DIR"`
	// CookieSecure marks the session and flash cookies Secure
	CookieSecure bool `env:"MTARP_COOKIE_SECURE" envDefault:"false"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	StatsOnlinePlayers int     `env:"MTARP_STATS_ONLINE_PLAYERS" envDefault:"532" validate:"gte=0"`
	StatsTotalPlayers  int     `env:"MTARP_STATS_TOTAL_PLAYERS" envDefault:"1247" validate:"gte=0"`
	StatsUptimePercent float64 `env:"MTARP_STATS_UPTIME_PERCENT" envDefault:"99.7" validate:"gte=0,lte=100"`
}

// Load parses the environment and validates the result
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

var validate = validator.New()

// Validate checks the configuration and reports every invalid field
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SlogLevel converts LogLevel into a slog.Level
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ServerStats returns the configured statistics panel figures
func (c Config) ServerStats() viewmodel.ServerStats {
	return viewmodel.ServerStats{
		OnlinePlayers: c.StatsOnlinePlayers,
		TotalPlayers:  c.StatsTotalPlayers,
		UptimePercent: c.StatsUptimePercent,
	}
}

func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "required_if":
		return fmt.Sprintf("%s is required when %s", field, fe.Param())
	case "url":
		return field + " must be a valid URL"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
