package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"connectfour/internal/bot"
	"connectfour/internal/config"
	"connectfour/internal/services"
	"connectfour/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	var levelA, levelB bot.Difficulty
	flag.TextVar(&levelA, "a", bot.Advanced, "difficulty of seat A (X)")
	flag.TextVar(&levelB, "b", bot.Normal, "difficulty of seat B (O)")
	games := flag.Int("games", cfg.Game.SelfPlayGames, "number of games to play")
	flag.Parse()

	if err := logger.Init(cfg.Server.Env); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	publisher, err := services.NewEventPublisher(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to create event publisher", zap.Error(err))
	}
	defer publisher.Close()

	seed := cfg.Seed()
	logger.Log.Info("Starting self-play",
		zap.String("a", levelA.String()),
		zap.String("b", levelB.String()),
		zap.Int("games", *games),
		zap.Int64("seed", seed),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	tournament := services.NewTournamentService(
		services.NewGameServiceWithSource(publisher, rand.NewSource(seed)),
		bot.NewWithSource(rand.NewSource(seed+1)),
	)
	result, err := tournament.Run(ctx, levelA, levelB, *games)
	if err != nil {
		logger.Log.Error("Self-play stopped", zap.Error(err), zap.Int("played", result.Games))
	}

	fmt.Printf("%s vs %s: %d games, A %d, B %d, draws %d, %.1f moves per game\n",
		levelA, levelB, result.Games, result.WinsA, result.WinsB, result.Draws, result.AvgMoves)
}
