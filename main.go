package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"printagent/cmd"
	"printagent/internal/config"
	"printagent/internal/container"
	"printagent/internal/core/logger"
	"printagent/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	cmd.Execute(ctx)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger := logger.NewLogger(cfg.LogLevel)
	defer zapLogger.Sync()

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()

	zapLogger.Info("Connected to the database successfully!")

	c := container.NewAppContainer(db, cfg, zapLogger)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	c.StatusHandler.RegisterRoutes(router)

	go func() {
		if err := router.Run(cfg.HTTPAddr); err != nil {
			zapLogger.Fatal("status server failed", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c.Agent.Run(ctx)
}
