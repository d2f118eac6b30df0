package config

import (
	"fmt"
	"os"

	applog "github.com/condyl/ruby/internal/logger"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	DiscordToken string
	HDevAPIKey   string
	DBPath       string
	HealthPort   string
	LogLevel     string

	// GuildID scopes slash-command registration to one guild when set;
	// empty registers the commands globally.
	GuildID string
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		DiscordToken: getEnv("DISCORD_TOKEN", ""),
		HDevAPIKey:   getEnv("HDEV_API_KEY", ""),
		DBPath:       getEnv("DB_PATH", "ruby.db"),
		HealthPort:   getEnv("HEALTH_PORT", "8081"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		GuildID:      getEnv("GUILD_ID", ""),
	}

	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}
	if cfg.HDevAPIKey == "" {
		return nil, fmt.Errorf("HDEV_API_KEY is required")
	}

	level := applog.SetLevel(cfg.LogLevel)

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("health_port", cfg.HealthPort).
		Str("log_level", level.String()).
		Bool("guild_scoped", cfg.GuildID != "").
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
