package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

// Config holds all process-wide settings. Loaded once at startup from the
// environment (optionally seeded by a .env file) and read-only afterwards.
type Config struct {
	Bot struct {
		Token           string `env:"TOKEN,required"`
		AdminTelegramID int64  `env:"ADMIN_TELEGRAM_ID"`
		UpdateTimeout   int    `env:"UPDATE_TIMEOUT" envDefault:"60"`
	} `envPrefix:"BOT_"`
	Tracker struct {
		BaseURL        string `env:"BASE_URL" envDefault:"https://api.tracker.yandex.net/v2"`
		OrgID          string `env:"ORG_ID,required"`
		Token          string `env:"TOKEN,required"`
		RequestTimeout int    `env:"REQUEST_TIMEOUT" envDefault:"10"`
	} `envPrefix:"TRACKER_"`
	Session struct {
		Capacity int `env:"CAPACITY" envDefault:"10000"`
	} `envPrefix:"SESSION_"`
	Log struct {
		Level  string `env:"LEVEL" envDefault:"info"`
		Format string `env:"FORMAT" envDefault:"json"`
		Output string `env:"OUTPUT" envDefault:"stdout"`
	} `envPrefix:"LOG_"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if errors.As(err, &aggErr) {
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}
	return cfg, nil
}
