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
	"connectfour/internal/console"
	"connectfour/internal/services"
	"connectfour/pkg/logger"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	verbose := flag.Bool("verbose", false, "log game events to stderr")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Logs would interleave with the board, so they stay off unless asked for.
	if *verbose {
		if err := logger.Init(cfg.Server.Env); err != nil {
			fmt.Printf("Failed to initialize logger: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
	}

	publisher, err := services.NewEventPublisher(cfg)
	if err != nil {
		logger.Log.Warn("Kafka unavailable, continuing without events", zap.Error(err))
		publisher = services.NopPublisher{}
	}
	defer publisher.Close()

	seed := cfg.Seed()
	games := services.NewGameServiceWithSource(publisher, rand.NewSource(seed))
	engine := bot.NewWithSource(rand.NewSource(seed + 1))

	terminal := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	c := console.New(os.Stdin, os.Stdout, console.Style{Color: terminal})
	c.ClearScreen = terminal

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := c.Run(ctx, games, engine); err != nil {
		logger.Log.Error("Console game failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		cancel()
		publisher.Close()
		logger.Sync()
		os.Exit(1)
	}
}
