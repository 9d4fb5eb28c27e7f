// Package config loads the application configuration from environment
// variables via viper, with sensible defaults for local development.
package config

import (
	"fmt"
	"time"

	"shopfront/internal/models"

	"github.com/spf13/viper"
)

// Config is the application configuration.
type Config struct {
	// AppPort is the listen address, e.g. ":8080".
	AppPort string
	// LogMode is "debug" or "release".
	LogMode string
	// LogFile enables rotated file logging when non-empty.
	LogFile string

	// DatabaseDriver is "sqlite" or "postgres".
	DatabaseDriver string
	DatabaseDSN    string

	// SessionStore is "memory" or "redis".
	SessionStore      string
	SessionExpiration time.Duration
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	RedisPrefix       string

	// ShippingFee is the flat shipping cost applied to non-empty carts.
	ShippingFee models.Money

	// RabbitMQURL enables order-event publishing when non-empty.
	RabbitMQURL string
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("LOG_MODE", "debug")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "shopfront.db")
	v.SetDefault("SESSION_STORE", "memory")
	v.SetDefault("SESSION_EXPIRATION_HOURS", 24)
	v.SetDefault("REDIS_ADDR", "127.0.0.1:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_PREFIX", "shopfront")
	v.SetDefault("SHIPPING_FEE", "0.00")
	v.SetDefault("RABBITMQ_URL", "")
	v.AutomaticEnv()

	shippingFee, err := models.NewMoneyFromString(v.GetString("SHIPPING_FEE"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHIPPING_FEE %q: %w", v.GetString("SHIPPING_FEE"), err)
	}

	driver := v.GetString("DATABASE_DRIVER")
	if driver != "sqlite" && driver != "postgres" {
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", driver)
	}

	store := v.GetString("SESSION_STORE")
	if store != "memory" && store != "redis" {
		return nil, fmt.Errorf("unsupported SESSION_STORE %q", store)
	}

	return &Config{
		AppPort:           v.GetString("APP_PORT"),
		LogMode:           v.GetString("LOG_MODE"),
		LogFile:           v.GetString("LOG_FILE"),
		DatabaseDriver:    driver,
		DatabaseDSN:       v.GetString("DATABASE_DSN"),
		SessionStore:      store,
		SessionExpiration: time.Duration(v.GetInt("SESSION_EXPIRATION_HOURS")) * time.Hour,
		RedisAddr:         v.GetString("REDIS_ADDR"),
		RedisPassword:     v.GetString("REDIS_PASSWORD"),
		RedisDB:           v.GetInt("REDIS_DB"),
		RedisPrefix:       v.GetString("REDIS_PREFIX"),
		ShippingFee:       shippingFee,
		RabbitMQURL:       v.GetString("RABBITMQ_URL"),
	}, nil
}
