package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectfour/internal/bot"
	"connectfour/internal/config"
	"connectfour/internal/handlers"
	"connectfour/internal/services"
	"connectfour/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Server.Env); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Log.Info("Starting Connect Four engine API",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
	)

	level, err := bot.ParseDifficulty(cfg.Game.DefaultDifficulty)
	if err != nil {
		logger.Log.Fatal("Invalid default difficulty", zap.Error(err))
	}

	// Initialize services
	engine := bot.NewWithSource(rand.NewSource(cfg.Seed()))
	advisor, err := services.NewAdvisorService(engine, cfg.Game.EvalCacheSize)
	if err != nil {
		logger.Log.Fatal("Failed to create advisor", zap.Error(err))
	}

	// Setup Gin
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := handlers.NewEngineRouter(
		handlers.NewEngineHandler(advisor, level),
		handlers.NewHealthHandler(cfg.KafkaEnabled()),
		cfg.Server.AllowedOrigins,
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		logger.Log.Info("Server listening", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server shutdown failed", zap.Error(err))
	}
}
