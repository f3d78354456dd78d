// Package config reads the application configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// AppConfig holds the process-level settings. Table names, AWS settings and
// the DynamoDB endpoint are read where they are used (repository and
// database packages).
type AppConfig struct {
	Port int `env:"APP_PORT" envDefault:"8080"`

	// Single shared credential pair gating the whole API.
	AuthUser     string `env:"AUTH_USER" envDefault:"labadmin"`
	AuthPassword string `env:"AUTH_PASSWORD" envDefault:"labadmin"`

	MercadoPagoAccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`
}

func Load() (AppConfig, error) {
	cfg := AppConfig{}
	if err := env.Parse(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
