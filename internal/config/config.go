package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App     App
	Server  Server
	Pricing Pricing
	Discard Discard
}

type App struct {
	Name        string `env:"APP_NAME" envDefault:"invclean"`
	Version     string `env:"APP_VERSION" envDefault:"dev"`
	CatalogPath string `env:"CATALOG_PATH"`
	StatePath   string `env:"STATE_PATH" envDefault:"invclean_state.json"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
