package service

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/bedaie/bedaie-web/internal/email"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const developmentSessionSecret = "development-session-secret-change-me"

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"8000"`
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8000"`
	AppName     string `env:"APP_NAME" envDefault:"BeDaie"`
	AssetsURL   string `env:"ASSETS_URL"`
	DBPath      string `env:"DB_PATH" envDefault:"./db/bedaie.db"`

	SessionSecret string `env:"SESSION_SECRET" envDefault:"development-session-secret-change-me"`

	JobsEnabled bool `env:"JOBS_ENABLED" envDefault:"true"`

	Email email.Config
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// LoadConfig reads an optional .env file and then the environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	if config.IsProduction() && config.SessionSecret == developmentSessionSecret {
		return nil, errors.New("SESSION_SECRET must be set in production")
	}

	return config, nil
}
