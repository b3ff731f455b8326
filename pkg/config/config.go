package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// MustLoad loads the configuration from environment variables and an
// optional .env file, panicking on parse failure.
func MustLoad[T any](cfg T) {
	_ = godotenv.Load() // a missing .env file is fine

	env.Must(cfg, env.Parse(cfg))
}

// Load loads the configuration from environment variables and an optional
// .env file.
func Load[T any](cfg T) error {
	_ = godotenv.Load()

	return env.Parse(cfg)
}

// Config holds the configuration for the application.
type Config struct {
	Market MarketConfig `envPrefix:"MARKET_"`
	Log    LogConfig    `envPrefix:"LOG_"`
}

// MarketConfig holds the fixed process-wide market parameters.
type MarketConfig struct {
	// TickFactor is the reciprocal of the tick size: 1000 means prices are
	// kept in units of 0.001.
	TickFactor int64 `env:"TICK_FACTOR" envDefault:"1000"`
	// ColumnWidth is the width of each side's column in the book display.
	ColumnWidth int `env:"COLUMN_WIDTH" envDefault:"15"`
}

// LogConfig holds the configuration for the logger.
type LogConfig struct {
	Level string `env:"LEVEL" envDefault:"info"`
}
