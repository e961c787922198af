package factory

import (
	"errors"
	"io"
	"log/slog"

	"wordroom/internal/dependencies/clock"
	"wordroom/internal/dependencies/random"
	"wordroom/internal/services/leaderboard"
	"wordroom/internal/services/room"
	"wordroom/internal/services/scoring"
	"wordroom/internal/services/token"
	"wordroom/internal/services/words"
	"wordroom/internal/storage"
	"wordroom/internal/storage/memory"
	redisstorage "wordroom/internal/storage/redis"
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
	Clock  clock.Clock
	Random random.Random

	// Services
	WordsService       *words.Service
	ScoringService     *scoring.Service
	TokenService       *token.Service
	LeaderboardService *leaderboard.Service
	RoomController     *room.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// TokenConfig configures session token signing; Secret is required
	TokenConfig token.Config
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

	var store storage.Storage
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
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return newWithDependencies(store, clock.New(), random.New(), cfg.TokenConfig, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	tokenCfg token.Config,
	logger *slog.Logger,
) (*App, error) {
	tokenService, err := token.New(tokenCfg, clk)
	if err != nil {
		return nil, err
	}

	wordsService := words.New(store, rnd)
	scoringService := scoring.New()
	leaderboardService := leaderboard.New(store, clk, logger)
	roomController := room.NewController(
		store, wordsService, scoringService, leaderboardService, clk, rnd, logger,
	)

	return &App{
		Storage:            store,
		Clock:              clk,
		Random:             rnd,
		WordsService:       wordsService,
		ScoringService:     scoringService,
		TokenService:       tokenService,
		LeaderboardService: leaderboardService,
		RoomController:     roomController,
	}, nil
}
