package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds runtime settings.
type Config struct {
	AppPort        string
	LogLevel       string
	DebounceWindow time.Duration
	StoreDriver    string
	DatabaseDSN    string
	SeedProducts   bool
	RabbitMQURL    string // empty disables change events
}

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DEBOUNCE_WINDOW", "500ms")
	v.SetDefault("STORE_DRIVER", DriverMemory)
	v.SetDefault("DATABASE_DSN", "file::memory:?cache=shared")
	v.SetDefault("SEED_PRODUCTS", true)
	v.SetDefault("RABBITMQ_URL", "")
}

// Load reads an optional .env file and the environment.
func Load() (Config, error) {
	// A missing .env file is fine.
	_ = godotenv.Load()

	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()
	return FromViper(v)
}

// FromViper builds a Config from v and validates it.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		AppPort:        v.GetString("APP_PORT"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		DebounceWindow: v.GetDuration("DEBOUNCE_WINDOW"),
		StoreDriver:    strings.ToLower(v.GetString("STORE_DRIVER")),
		DatabaseDSN:    v.GetString("DATABASE_DSN"),
		SeedProducts:   v.GetBool("SEED_PRODUCTS"),
		RabbitMQURL:    v.GetString("RABBITMQ_URL"),
	}

	switch cfg.StoreDriver {
	case DriverMemory, DriverSQLite, DriverPostgres:
	default:
		return Config{}, fmt.Errorf("invalid STORE_DRIVER %q", cfg.StoreDriver)
	}
	if cfg.DebounceWindow < 0 {
		return Config{}, fmt.Errorf("invalid DEBOUNCE_WINDOW %s", cfg.DebounceWindow)
	}
	if cfg.AppPort == "" {
		return Config{}, fmt.Errorf("APP_PORT must not be empty")
	}
	return cfg, nil
}
