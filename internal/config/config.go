package config

import (
	"fmt"
	"strings"

	"github.com/hance08/atm/internal/constants"
)

type Config struct {
	Storage    StorageConfig  `mapstructure:"storage"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type StorageConfig struct {
	Backend     string `mapstructure:"backend"`
	Dir         string `mapstructure:"dir"`
	SQLitePath  string `mapstructure:"sqlite_path"`
	RedisURL    string `mapstructure:"redis_url"`
	RedisPrefix string `mapstructure:"redis_prefix"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

func NewDefault() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:     constants.BackendFile,
			RedisURL:    "redis://localhost:6379/0",
			RedisPrefix: constants.DefaultRedisPrefix,
		},
		Defaults: DefaultsConfig{Currency: constants.DefaultCurrency},
		Log:      LogConfig{Level: "info"},
	}
}

// Validate normalizes the backend name and rejects unknown ones.
func (c *Config) Validate() error {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	if c.Storage.Backend == "" {
		c.Storage.Backend = constants.BackendFile
	}

	switch c.Storage.Backend {
	case constants.BackendFile, constants.BackendSQLite, constants.BackendRedis:
	default:
		return fmt.Errorf("invalid storage backend '%s' (must be file, sqlite or redis)", c.Storage.Backend)
	}

	c.Defaults.Currency = strings.ToUpper(strings.TrimSpace(c.Defaults.Currency))
	if c.Defaults.Currency == "" {
		c.Defaults.Currency = constants.DefaultCurrency
	}

	return nil
}
