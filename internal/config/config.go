package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Game   GameConfig
	Kafka  KafkaConfig
}

type ServerConfig struct {
	Port           string   `env:"PORT" env-default:"8080"`
	Env            string   `env:"ENV" env-default:"development"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:5173"`
}

type GameConfig struct {
	DefaultDifficulty string `env:"DEFAULT_DIFFICULTY" env-default:"advanced"`
	EvalCacheSize     int    `env:"EVAL_CACHE_SIZE" env-default:"1024"`
	// RandomSeed fixes the bot's random source; 0 seeds from the clock.
	RandomSeed    int64 `env:"RANDOM_SEED" env-default:"0"`
	SelfPlayGames int   `env:"SELFPLAY_GAMES" env-default:"100"`
}

type KafkaConfig struct {
	Brokers     []string `env:"KAFKA_BROKERS" env-separator:","`
	TopicEvents string   `env:"KAFKA_TOPIC_EVENTS" env-default:"game.events"`
	Username    string   `env:"KAFKA_USERNAME"`
	Password    string   `env:"KAFKA_PASSWORD"`
	TLS         bool     `env:"KAFKA_TLS" env-default:"false"`
	GroupID     string   `env:"KAFKA_GROUP_ID" env-default:"connectfour-analytics"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if cfg.Game.EvalCacheSize <= 0 {
		return nil, fmt.Errorf("EVAL_CACHE_SIZE must be positive, got %d", cfg.Game.EvalCacheSize)
	}
	if cfg.Game.SelfPlayGames <= 0 {
		return nil, fmt.Errorf("SELFPLAY_GAMES must be positive, got %d", cfg.Game.SelfPlayGames)
	}
	return &cfg, nil
}

// KafkaEnabled reports whether any broker is configured.
func (c *Config) KafkaEnabled() bool {
	for _, b := range c.Kafka.Brokers {
		if b != "" {
			return true
		}
	}
	return false
}

// Seed returns the configured random seed, or a clock based one when unset.
func (c *Config) Seed() int64 {
	if c.Game.RandomSeed != 0 {
		return c.Game.RandomSeed
	}
	return time.Now().UnixNano()
}
