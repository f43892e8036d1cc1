// Package config reads the sheet's runtime configuration from the
// environment, with an optional .env file loaded first.
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/vop-sheet/internal/errors"
)

// Storage selects the persistence backend for the save slot
type Storage string

// Storage backends
const (
	StorageSQLite Storage = "sqlite"
	StorageRedis  Storage = "redis"
	StorageMemory Storage = "memory"
)

// String returns the string representation
func (s Storage) String() string {
	return string(s)
}

var storages = []string{StorageSQLite.String(), StorageRedis.String(), StorageMemory.String()}

// Config holds everything the sheet needs at startup
type Config struct {
	Storage    Storage `env:"SHEET_STORAGE" envDefault:"sqlite"`
	SQLitePath string  `env:"SHEET_SQLITE_PATH" envDefault:"data/sheet.db"`
	RedisAddr  string  `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Slot       string  `env:"SHEET_SLOT" envDefault:"vop.character.v1"`
	CatalogDir string  `env:"SHEET_CATALOG_DIR"`
	GRPCPort   int     `env:"SHEET_GRPC_PORT" envDefault:"50051"`
	Autosave   bool    `env:"SHEET_AUTOSAVE" envDefault:"true"`
	LogLevel   string  `env:"SHEET_LOG_LEVEL" envDefault:"info"`
}

// Load reads the given .env files (or ./.env when none are named), then the
// environment. Missing .env files are skipped. The result is not validated:
// apply any overrides, then call Validate.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, errors.Wrapf(err, "failed to load %s", f)
		}
	}

	return read()
}

// Parse reads the configuration from the environment and validates it
func Parse() (*Config, error) {
	cfg, err := read()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func read() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	return cfg, nil
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("SHEET_STORAGE", c.Storage.String(), storages, vb)
	switch c.Storage {
	case StorageSQLite:
		errors.ValidateRequired("SHEET_SQLITE_PATH", c.SQLitePath, vb)
	case StorageRedis:
		errors.ValidateRequired("REDIS_ADDR", c.RedisAddr, vb)
	}
	errors.ValidateRequired("SHEET_SLOT", c.Slot, vb)
	errors.ValidateRange("SHEET_GRPC_PORT", c.GRPCPort, 1, 65535, vb)
	if _, ok := parseLevel(c.LogLevel); !ok {
		vb.Fieldf("SHEET_LOG_LEVEL", "must be one of debug, info, warn, error; got %q", c.LogLevel)
	}

	return vb.Build()
}

// Level returns the slog level named by LogLevel, info when unknown
func (c *Config) Level() slog.Level {
	lvl, _ := parseLevel(c.LogLevel)
	return lvl
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
