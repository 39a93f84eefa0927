package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectfour/internal/config"
	"connectfour/internal/handlers"
	"connectfour/internal/services"
	"connectfour/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const snapshotInterval = time.Minute

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

	logger.Log.Info("Starting Connect Four analytics consumer",
		zap.String("env", cfg.Server.Env),
		zap.Strings("kafka_brokers", cfg.Kafka.Brokers),
		zap.String("topic", cfg.Kafka.TopicEvents),
	)

	analyticsService := services.NewAnalyticsService(services.NewLeaderboardService())

	kafkaConsumer, err := services.NewKafkaConsumer(cfg, analyticsService)
	if err != nil {
		logger.Log.Fatal("Failed to create Kafka consumer", zap.Error(err))
	}
	defer kafkaConsumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go kafkaConsumer.Start(ctx)
	go logSnapshots(ctx, analyticsService)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr: ":" + cfg.Server.Port,
		Handler: handlers.NewAnalyticsRouter(
			handlers.NewAnalyticsHandler(analyticsService),
			handlers.NewHealthHandler(true),
			cfg.Server.AllowedOrigins,
		),
	}
	go func() {
		logger.Log.Info("Analytics API listening", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("Analytics API failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutdown signal received, stopping consumer...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Analytics API shutdown failed", zap.Error(err))
	}

	logger.Log.Info("Analytics consumer stopped", zap.Any("snapshot", analyticsService.Snapshot()))
}

func logSnapshots(ctx context.Context, as *services.AnalyticsService) {
	ticker := time.NewTicker(snapshotInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s := as.Snapshot()
			logger.Log.Info("Analytics snapshot",
				zap.Int("games_completed", s.GamesCompleted),
				zap.Int("draws", s.Draws),
				zap.Int("resignations", s.Resignations),
				zap.Float64("avg_moves", s.AvgMovesPerGame),
				zap.Any("wins_by", s.WinsBy),
			)
		}
	}
}
