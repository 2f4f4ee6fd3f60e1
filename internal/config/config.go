package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultModelPath = "reports/forecastingModel.json"

type Config struct {
	Model  ModelConfig
	Logger LoggerConfig
}

type ModelConfig struct {
	Path string
}

type LoggerConfig struct {
	Level  string
	Format string
}

// Load reads configuration from the environment. A .env file in the working directory,
// if present, is applied first without overriding variables that are already set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()

	// Defaults
	v.SetDefault("MODEL_PATH", DefaultModelPath)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "text")

	// Env
	v.AutomaticEnv()

	cfg := &Config{
		Model: ModelConfig{
			Path: v.GetString("MODEL_PATH"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}
