package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server  ServerConfig  `envPrefix:"SERVER_"`
	Catalog CatalogConfig `envPrefix:"CATALOG_"`
	Auth    AuthConfig    `envPrefix:"AUTH_"`
	Cookie  CookieConfig  `envPrefix:"COOKIE_"`
}

type ServerConfig struct {
	Addr string `env:"ADDR" envDefault:":8080"`
}

// CatalogConfig points at the remote demo products API. The backend is a
// public demo service: writes are accepted but never durably persisted.
type CatalogConfig struct {
	BaseURL string        `env:"BASE_URL" envDefault:"https://dummyjson.com"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// AuthConfig holds the single hardcoded credential pair for the admin
// login gate. There are no user accounts behind this.
type AuthConfig struct {
	Username string `env:"USERNAME" envDefault:"admin"`
	Password string `env:"PASSWORD" envDefault:"password"`
}

type CookieConfig struct {
	FlashSecret string `env:"FLASH_SECRET" envDefault:"dev-flash-secret"`
	Secure      bool   `env:"SECURE" envDefault:"false"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
