package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"crapsim/models"
	"crapsim/report"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// ErrInvalidConfig indicates a configuration value outside its allowed range
var ErrInvalidConfig = errors.New("invalid configuration")

const defaultEnvFile = ".env"

// Config holds all application configuration
type Config struct {
	// Simulation configuration
	Dice      int              `env:"CRAPS_DICE" envDefault:"2"`
	Faces     int              `env:"CRAPS_FACES" envDefault:"6"`
	Weighting models.Weighting `env:"CRAPS_WEIGHTING" envDefault:"unique"`
	Seed      int64            `env:"CRAPS_SEED" envDefault:"0"` // 0 draws a random seed
	Workers   int              `env:"CRAPS_WORKERS" envDefault:"1"`

	// Output configuration
	Output    report.Format `env:"CRAPS_OUTPUT" envDefault:"text"`
	LogLevel  log.Level     `env:"CRAPS_LOG_LEVEL" envDefault:"warn"`
	LogFormat string        `env:"CRAPS_LOG_FORMAT" envDefault:"text"`

	// Discord configuration
	DiscordToken   string `env:"DISCORD_TOKEN"`
	DiscordGuildID string `env:"DISCORD_GUILD_ID"`
	BotMaxPlays    int    `env:"CRAPS_BOT_MAX_PLAYS" envDefault:"1000000"`

	// Environment
	Environment string `env:"ENVIRONMENT" envDefault:"development"` // "development" or "production"
}

// Load reads the optional dotenv file named by CRAPS_ENV_FILE (default .env)
// and parses the environment. Variables already set in the process win over
// the file. A missing file is not an error.
func Load() (*Config, error) {
	path := os.Getenv("CRAPS_ENV_FILE")
	if path == "" {
		path = defaultEnvFile
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file %s: %w", path, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// DiceConfig returns the configured dice
func (c *Config) DiceConfig() models.DiceConfig {
	return models.DiceConfig{Dice: c.Dice, Faces: c.Faces}
}

// Validate checks the settings shared by every command
func (c *Config) Validate() error {
	if err := c.DiceConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: CRAPS_WORKERS must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: CRAPS_LOG_FORMAT must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// ValidateBot checks the settings the Discord bot additionally needs
func (c *Config) ValidateBot() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DiscordToken == "" {
		return fmt.Errorf("%w: DISCORD_TOKEN is required", ErrInvalidConfig)
	}
	if c.BotMaxPlays < 1 {
		return fmt.Errorf("%w: CRAPS_BOT_MAX_PLAYS must be at least 1, got %d", ErrInvalidConfig, c.BotMaxPlays)
	}
	return nil
}

// ConfigureLogging applies the log level and format to the standard logger
func (c *Config) ConfigureLogging() {
	log.SetLevel(c.LogLevel)
	if c.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
		return
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}
