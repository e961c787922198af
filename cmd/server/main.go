package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"wordroom/internal/api"
	"wordroom/internal/factory"
	"wordroom/internal/services/token"
	redisstorage "wordroom/internal/storage/redis"
)

func main() {
	// .env is optional; real env vars win
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	tokenSecret := os.Getenv("WORDROOM_TOKEN_SECRET")
	if tokenSecret == "" {
		logger.Error("WORDROOM_TOKEN_SECRET is required")
		os.Exit(1)
	}

	cfg := factory.Config{
		TokenConfig: token.Config{Secret: tokenSecret},
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
	}

	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Load the word list from file, falling back to one previously saved
	// in storage (populated on an earlier run against the same Redis)
	wordsPath := os.Getenv("WORDROOM_WORDS")
	if wordsPath == "" {
		wordsPath = "data/words.txt"
	}
	if err := app.WordsService.LoadFromFile(context.Background(), wordsPath); err != nil {
		logger.Warn("could not load word list from file",
			slog.String("path", wordsPath),
			slog.String("error", err.Error()),
		)
		if err := app.WordsService.LoadFromStorage(context.Background()); err != nil {
			logger.Error("no word list available", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
	logger.Info("word list loaded", slog.Int("count", app.WordsService.Count()))

	// Hash the admin key once at startup; clearing the leaderboard is
	// disabled when no key is configured
	var adminKeyHash []byte
	if adminKey := os.Getenv("WORDROOM_ADMIN_KEY"); adminKey != "" {
		adminKeyHash, err = bcrypt.GenerateFromPassword([]byte(adminKey), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("failed to hash admin key", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		TokenService:       app.TokenService,
		RoomController:     app.RoomController,
		LeaderboardService: app.LeaderboardService,
		WordsService:       app.WordsService,
		AdminKeyHash:       adminKeyHash,
	})

	serverConfig := api.DefaultServerConfig()
	if port := os.Getenv("WORDROOM_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			logger.Error("invalid WORDROOM_PORT", slog.String("port", port))
			os.Exit(1)
		}
		serverConfig.Port = p
	}
	server := api.NewServer(router, serverConfig, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
