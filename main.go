// main.go
package main

import (
	"context"
	"log"
	"time"

	"jewelry-store/cmd"
	"jewelry-store/internal/data/repository"
	"jewelry-store/internal/wire"
	"jewelry-store/pkg/auth"
	"jewelry-store/pkg/database"
	"jewelry-store/pkg/utils"

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

	// Apply schema migrations
	if err := database.Migrate(context.Background(), config.Database); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Session claim manager
	tokens := auth.NewManager(config.JWT.Secret, time.Duration(config.JWT.ExpiryHours)*time.Hour)

	// Wire all dependencies
	app := wire.Wiring(repos, config, tokens, logger)

	// Seed admin account when configured (out-of-band provisioning; no
	// endpoint promotes a user to admin)
	if err := app.Service.Auth.EnsureAdmin(context.Background()); err != nil {
		logger.Fatal("Failed to seed admin user", zap.Error(err))
	}

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
