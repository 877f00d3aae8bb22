package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/MinoUni/who-am-i-team-3/internal/archive"
	"github.com/MinoUni/who-am-i-team-3/internal/archive/memory"
	redisarchive "github.com/MinoUni/who-am-i-team-3/internal/archive/redis"
	"github.com/MinoUni/who-am-i-team-3/internal/dependencies/clock"
	"github.com/MinoUni/who-am-i-team-3/internal/dependencies/idgen"
	"github.com/MinoUni/who-am-i-team-3/internal/dependencies/random"
	"github.com/MinoUni/who-am-i-team-3/internal/registry"
	"github.com/MinoUni/who-am-i-team-3/internal/service"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Live sessions and the finished-game archive
	Registry *registry.Registry
	Archive  archive.Store

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	IDs    idgen.Generator

	// Services
	GameService *service.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the archive backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisarchive.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store archive.Store
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
		redisStore, err := redisarchive.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return newWithDependencies(store, clock.New(), random.New(), idgen.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store archive.Store,
	clk clock.Clock,
	rnd random.Random,
	ids idgen.Generator,
	logger *slog.Logger,
) *App {
	reg := registry.New()
	gameService := service.New(reg, store, ids, rnd, clk, logger)

	return &App{
		Registry:    reg,
		Archive:     store,
		Clock:       clk,
		Random:      rnd,
		IDs:         ids,
		GameService: gameService,
	}
}
