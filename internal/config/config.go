package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Kakeibo"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"kakeibo"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		Secret       string        `envconfig:"AUTH_SECRET"`
		Username     string        `envconfig:"AUTH_USERNAME" default:"admin"`
		PasswordHash string        `envconfig:"AUTH_PASSWORD_HASH"`
		TokenTTL     time.Duration `envconfig:"AUTH_TOKEN_TTL" default:"720h"`
	}

	// Fiscal controls how calendar dates map to accounting periods.
	// With CutoverDay=1 periods degenerate to plain calendar months.
	Fiscal struct {
		CutoverDay      int `envconfig:"FISCAL_CUTOVER_DAY" default:"1"`
		NextMonthMinDay int `envconfig:"FISCAL_NEXT_MONTH_MIN_DAY" default:"16"`
		MinYear         int `envconfig:"FISCAL_MIN_YEAR" default:"2019"`
		MaxYear         int `envconfig:"FISCAL_MAX_YEAR" default:"2100"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
