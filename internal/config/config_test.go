package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "DEFAULT_DIFFICULTY", "EVAL_CACHE_SIZE", "KAFKA_BROKERS", "SELFPLAY_GAMES"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "8080" || cfg.Server.Env != "development" {
		t.Fatalf("unexpected server defaults: %+v", cfg.Server)
	}
	if cfg.Game.DefaultDifficulty != "advanced" || cfg.Game.EvalCacheSize != 1024 || cfg.Game.SelfPlayGames != 100 {
		t.Fatalf("unexpected game defaults: %+v", cfg.Game)
	}
	if cfg.KafkaEnabled() {
		t.Fatalf("kafka should be disabled without brokers")
	}
	if cfg.Kafka.TopicEvents != "game.events" {
		t.Fatalf("unexpected topic %q", cfg.Kafka.TopicEvents)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEFAULT_DIFFICULTY", "easy")
	t.Setenv("KAFKA_BROKERS", "a:9092,b:9092")
	t.Setenv("RANDOM_SEED", "42")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" || cfg.Game.DefaultDifficulty != "easy" || cfg.Game.RandomSeed != 42 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Seed() != 42 {
		t.Fatalf("expected fixed seed 42, got %d", cfg.Seed())
	}
	if !cfg.KafkaEnabled() || len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "b:9092" {
		t.Fatalf("unexpected brokers %v", cfg.Kafka.Brokers)
	}
}

func TestLoadRejectsBadCacheSize(t *testing.T) {
	t.Setenv("EVAL_CACHE_SIZE", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero cache size")
	}
	t.Setenv("EVAL_CACHE_SIZE", "lots")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non numeric cache size")
	}
}

func TestSeedFallsBackToClock(t *testing.T) {
	var cfg Config
	if cfg.Seed() == 0 {
		t.Fatalf("unset seed must not be zero")
	}
}
