// main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"yoga-booking/cmd"
	"yoga-booking/internal/cart"
	"yoga-booking/internal/chat"
	"yoga-booking/internal/data/repository"
	"yoga-booking/internal/usecase"
	"yoga-booking/internal/wire"
	"yoga-booking/pkg/database"
	"yoga-booking/pkg/localstore"
	"yoga-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Connect to redis (conversation change notifications)
	redisClient, err := database.InitRedis(ctx, config.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()

	logger.Info("Redis connected successfully")

	// Open the local cart store
	cartDB, err := localstore.Open(config.Cart.Path)
	if err != nil {
		logger.Fatal("Failed to open cart store", zap.Error(err))
	}
	defer cartDB.Close()

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Cart aggregates backed by the local store
	carts := cart.NewStore(cartDB, logger)

	// Conversation relay: redis wakes subscribers, postgres serves snapshots
	relay := chat.NewRelay(
		chat.NewRedisBus(redisClient),
		usecase.NewMessageSource(repos.Message),
		logger,
	)

	// Wire all dependencies
	app := wire.Wiring(repos, carts, relay, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(ctx, app.Router, config.App.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server error", zap.Error(err))
	}

	// Persist every loaded cart before the store closes.
	if err := carts.Flush(); err != nil {
		logger.Error("Failed to flush carts on shutdown", zap.Error(err))
	}

	logger.Info("Shutdown complete")
}
