package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/mtarp-portal/internal/authclient"
	"github.com/mcoot/mtarp-portal/internal/dependencies/clock"
	"github.com/mcoot/mtarp-portal/internal/dependencies/ids"
	"github.com/mcoot/mtarp-portal/internal/services/viewstate"
	"github.com/mcoot/mtarp-portal/internal/storage"
	"github.com/mcoot/mtarp-portal/internal/storage/memory"
	redisstorage "github.com/mcoot/mtarp-portal/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock
	IDs   ids.Generator

	// Services
	AuthClient *authclient.Client
	Controller *viewstate.Controller
	Sessions   *viewstate.Sessions

	closers []io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig points the app at the auth endpoint. Endpoint is required.
	AuthConfig authclient.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	if cfg.AuthConfig.Endpoint == "" {
		return nil, errors.New("AuthConfig.Endpoint is required")
	}

	var store storage.Storage
	var closers []io.Closer
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		store = redisStore
		closers = append(closers, redisStore)
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory' or 'redis'", storageType)
	}

	app := newWithDependencies(store, clock.New(), ids.New(), authclient.New(cfg.AuthConfig), logger)
	app.closers = closers
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, gen ids.Generator, client *authclient.Client, logger *slog.Logger) *App {
	controller := viewstate.NewController(client, clk, logger)
	sessions := viewstate.NewSessions(store, controller, gen, logger)

	return &App{
		Storage:    store,
		Clock:      clk,
		IDs:        gen,
		AuthClient: client,
		Controller: controller,
		Sessions:   sessions,
	}
}

// Close releases backend connections held by the app
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
