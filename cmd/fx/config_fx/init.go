package config_fx

import (
	"log"

	"go.uber.org/fx"

	"authhub/internal/config"
)

var Module = fx.Provide(
	provideConfig)

func provideConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return cfg
}
