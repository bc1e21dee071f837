// Package config loads storefront.yml and applies STOREFRONT_* environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"goflare.io/storefront/currency"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

const (
	CatalogStatic   = "static"
	CatalogPostgres = "postgres"
	CatalogHTTP     = "http"

	StorageMemory   = "memory"
	StorageFile     = "file"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Storage  StorageConfig  `yaml:"storage"`
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
	NATS     NATSConfig     `yaml:"nats"`
	Currency CurrencyConfig `yaml:"currency"`
	Log      LogConfig      `yaml:"log"`
	DeviceID string         `yaml:"device_id"`
}

type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// CatalogConfig selects where items come from. URL is the server base URL
// used by the http driver.
type CatalogConfig struct {
	Driver string `yaml:"driver"`
	URL    string `yaml:"url"`
}

// StorageConfig selects where the cart and the currency preference live.
type StorageConfig struct {
	Driver string `yaml:"driver"`
	Dir    string `yaml:"dir"`
}

type PostgresConfig struct {
	DSN             string        `yaml:"dsn"`
	MaxConns        int32         `yaml:"max_conns"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// NATSConfig enables cart event publishing when URL is set.
type NATSConfig struct {
	URL     string `yaml:"url"`
	Workers int    `yaml:"workers"`
}

type CurrencyConfig struct {
	Locale string            `yaml:"locale"`
	Rates  map[string]string `yaml:"rates,omitempty"`
}

type LogConfig struct {
	Development bool   `yaml:"development"`
	Level       string `yaml:"level"`
}

// Default is the configuration used when no file is given.
func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Addr:            ":8080",
			RequestTimeout:  10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Catalog: CatalogConfig{
			Driver: CatalogStatic,
			URL:    "http://localhost:8080",
		},
		Storage: StorageConfig{
			Driver: StorageFile,
			Dir:    ".storefront",
		},
		Postgres: PostgresConfig{
			MaxConns:        10,
			MaxConnLifetime: 5 * time.Minute,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		NATS: NATSConfig{
			Workers: 4,
		},
		Currency: CurrencyConfig{
			Locale: "fr",
		},
		Log: LogConfig{
			Level: "info",
		},
		DeviceID: "local",
	}
}

// Load reads path over the defaults, applies the environment and validates.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.HTTP.Addr = getEnv("STOREFRONT_HTTP_ADDR", c.HTTP.Addr)
	c.Catalog.Driver = getEnv("STOREFRONT_CATALOG_DRIVER", c.Catalog.Driver)
	c.Catalog.URL = getEnv("STOREFRONT_CATALOG_URL", c.Catalog.URL)
	c.Storage.Driver = getEnv("STOREFRONT_STORAGE_DRIVER", c.Storage.Driver)
	c.Storage.Dir = getEnv("STOREFRONT_STORAGE_DIR", c.Storage.Dir)
	c.Postgres.DSN = getEnv("STOREFRONT_POSTGRES_DSN", c.Postgres.DSN)
	c.Redis.Addr = getEnv("STOREFRONT_REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = getEnv("STOREFRONT_REDIS_PASSWORD", c.Redis.Password)
	c.NATS.URL = getEnv("STOREFRONT_NATS_URL", c.NATS.URL)
	c.Currency.Locale = getEnv("STOREFRONT_LOCALE", c.Currency.Locale)
	c.Log.Level = getEnv("STOREFRONT_LOG_LEVEL", c.Log.Level)
	c.DeviceID = getEnv("STOREFRONT_DEVICE_ID", c.DeviceID)

	if v := os.Getenv("STOREFRONT_LOG_DEVELOPMENT"); v != "" {
		dev, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: STOREFRONT_LOG_DEVELOPMENT: %v", ErrInvalid, err)
		}
		c.Log.Development = dev
	}
	return nil
}

// Validate checks driver names and the settings each driver needs.
func (c *Config) Validate() error {
	switch c.Catalog.Driver {
	case CatalogStatic:
	case CatalogPostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("%w: catalog driver postgres needs postgres.dsn", ErrInvalid)
		}
	case CatalogHTTP:
		if c.Catalog.URL == "" {
			return fmt.Errorf("%w: catalog driver http needs catalog.url", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown catalog driver %q", ErrInvalid, c.Catalog.Driver)
	}

	switch c.Storage.Driver {
	case StorageMemory:
	case StorageFile:
		if c.Storage.Dir == "" {
			return fmt.Errorf("%w: storage driver file needs storage.dir", ErrInvalid)
		}
	case StorageRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("%w: storage driver redis needs redis.addr", ErrInvalid)
		}
	case StoragePostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("%w: storage driver postgres needs postgres.dsn", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown storage driver %q", ErrInvalid, c.Storage.Driver)
	}

	if strings.TrimSpace(c.DeviceID) == "" {
		return fmt.Errorf("%w: device_id is required", ErrInvalid)
	}
	if c.HTTP.RequestTimeout <= 0 {
		return fmt.Errorf("%w: http.request_timeout must be positive", ErrInvalid)
	}
	if _, err := c.Language(); err != nil {
		return err
	}
	if _, err := c.Rates(); err != nil {
		return err
	}
	if _, err := zap.ParseAtomicLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	return nil
}

func (c *Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.Currency.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("%w: currency.locale %q: %v", ErrInvalid, c.Currency.Locale, err)
	}
	return tag, nil
}

// Rates returns the default rate table with configured overrides applied.
func (c *Config) Rates() (currency.Rates, error) {
	rates := currency.DefaultRates()
	for code, raw := range c.Currency.Rates {
		cur, ok := currency.Parse(code)
		if !ok {
			return nil, fmt.Errorf("%w: unsupported currency %q in currency.rates", ErrInvalid, code)
		}
		rate, err := decimal.NewFromString(raw)
		if err != nil || !rate.IsPositive() {
			return nil, fmt.Errorf("%w: rate for %s must be a positive number", ErrInvalid, code)
		}
		rates[cur] = rate
	}
	return rates, nil
}

// NewLogger builds the zap logger described by the log section.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}

	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
