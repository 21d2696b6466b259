package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

// TableConfig holds the per-table constants every new table starts from.
type TableConfig struct {
	SmallBlind   int64 `env:"SMALL_BLIND" envDefault:"20"`
	CoinsAtStart int64 `env:"COINS_AT_START" envDefault:"1000"`
	MaxSeats     int   `env:"MAX_SEATS" envDefault:"10"`
}

func LoadTable() (TableConfig, error) {
	var cfg TableConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c TableConfig) Validate() error {
	if c.SmallBlind < 0 {
		return errors.New("SMALL_BLIND must not be negative")
	}
	if c.CoinsAtStart < 0 {
		return errors.New("COINS_AT_START must not be negative")
	}
	if c.MaxSeats < 2 {
		return errors.New("MAX_SEATS must be at least 2")
	}
	return nil
}
