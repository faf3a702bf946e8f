package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

type Config struct {
	DiscordToken     string `env:"DISCORD_TOKEN,required"`
	StoragePath      string `env:"STORAGE_PATH" envDefault:"datastore.json"`
	GuildID          string `env:"DISCORD_GUILD_ID"`
	RegisterCommands bool   `env:"REGISTER_COMMANDS" envDefault:"true"`
}

// New parses configuration from the environment. A missing DISCORD_TOKEN is
// an error so the process can fail before any connection attempt.
func New() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}
