package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	SQLite    SQLiteConfig
	Inventory InventoryConfig
	Ledger    LedgerConfig
	Reminder  ReminderConfig
}

type ServerConfig struct {
	AppEnv   string `envconfig:"APP_ENV" default:"dev"`
	GRPCPort string `envconfig:"GRPC_PORT" default:":8083"`
}

type LoggerConfig struct {
	Level             string `envconfig:"LOGGER_LEVEL" default:"debug"`
	Encoding          string `envconfig:"LOGGER_ENCODING" default:"console"`
	DisableCaller     bool   `envconfig:"LOGGER_DISABLE_CALLER" default:"false"`
	DisableStacktrace bool   `envconfig:"LOGGER_DISABLE_STACKTRACE" default:"true"`
}

type SQLiteConfig struct {
	Path         string        `envconfig:"SQLITE_PATH" default:"tracker.db"`
	MaxOpenConns int           `envconfig:"SQLITE_MAX_OPEN_CONNS" default:"1"`
	BusyTimeout  time.Duration `envconfig:"SQLITE_BUSY_TIMEOUT" default:"5s"`
}

// InventoryConfig holds the stock policy. AllowNegative keeps overselling
// possible: a sale is recorded even when it drives qty_on_hand below zero.
type InventoryConfig struct {
	AllowNegative     bool  `envconfig:"INVENTORY_ALLOW_NEGATIVE" default:"true"`
	LowStockThreshold int64 `envconfig:"INVENTORY_LOW_STOCK_THRESHOLD" default:"3"`
	RestockThreshold  int64 `envconfig:"INVENTORY_RESTOCK_THRESHOLD" default:"5"`
}

type LedgerConfig struct {
	Timezone     string `envconfig:"LEDGER_TIMEZONE" default:"Local"`
	ReturnTag    string `envconfig:"LEDGER_RETURN_TAG" default:"RETURN"`
	SeedDefaults bool   `envconfig:"LEDGER_SEED_DEFAULTS" default:"true"`
}

type ReminderConfig struct {
	Enabled bool   `envconfig:"REMINDER_ENABLED" default:"false"`
	Spec    string `envconfig:"REMINDER_SPEC" default:"0 21 * * *"`
}

// LoadEnv reads the configuration from the environment. Callers load any
// .env file beforehand.
func LoadEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.Ledger.Location(); err != nil {
		return nil, err
	}
	if cfg.Inventory.LowStockThreshold < 0 || cfg.Inventory.RestockThreshold < 0 {
		return nil, errors.New("inventory thresholds must be >= 0")
	}
	if cfg.SQLite.MaxOpenConns <= 0 {
		cfg.SQLite.MaxOpenConns = 1
	}
	return &cfg, nil
}

// Location resolves the ledger timezone used to stamp and bucket dates.
func (c LedgerConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid LEDGER_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c *Config) IsDevelopment() bool {
	return c != nil && (c.Server.AppEnv == "dev" || c.Server.AppEnv == "development")
}
