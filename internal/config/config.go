// Package config holds the service configuration, loaded from environment
// variables and an optional .env file.
package config

import (
	"time"

	"github.com/ANUSHKASINGH809/orderbook-simulator/pkg/redis"
)

// Config holds the configuration for the simulator service.
type Config struct {
	// Symbol is the canonical instrument, e.g. "BTC-USDT". Each venue
	// adapter maps it to its own naming.
	Symbol string `env:"SYMBOL" envDefault:"BTC-USDT"`

	// Venues lists the feeds to run.
	Venues []string `env:"VENUES" envDefault:"okx,bybit,deribit"`

	HTTPAddress     string        `env:"HTTP_ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`

	// RedisEnabled turns on the Redis snapshot mirror.
	RedisEnabled bool         `env:"REDIS_ENABLED" envDefault:"false"`
	Redis        redis.Config `envPrefix:"REDIS_"`
}
