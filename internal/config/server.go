package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// PostgresDSN enables the move journal. Tables still work without it.
	PostgresDSN string `env:"POSTGRES_DSN"`

	AdminAPIKey string `env:"ADMIN_API_KEY"`

	MaxCaptureBytes int `env:"LOG_CAPTURE_BYTES" envDefault:"4096"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
