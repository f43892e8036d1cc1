package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/vop-sheet/internal/config"
	"github.com/KirkDiggler/vop-sheet/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	for _, k := range []string{
		"SHEET_STORAGE", "SHEET_SQLITE_PATH", "REDIS_ADDR", "SHEET_SLOT",
		"SHEET_CATALOG_DIR", "SHEET_GRPC_PORT", "SHEET_AUTOSAVE", "SHEET_LOG_LEVEL",
	} {
		s.T().Setenv(k, "")
		s.Require().NoError(os.Unsetenv(k))
	}
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Parse()
	s.Require().NoError(err)

	s.Equal(config.StorageSQLite, cfg.Storage)
	s.Equal("data/sheet.db", cfg.SQLitePath)
	s.Equal("localhost:6379", cfg.RedisAddr)
	s.Equal("vop.character.v1", cfg.Slot)
	s.Equal("", cfg.CatalogDir)
	s.Equal(50051, cfg.GRPCPort)
	s.True(cfg.Autosave)
	s.Equal(slog.LevelInfo, cfg.Level())
}

func (s *ConfigTestSuite) TestOverrides() {
	s.T().Setenv("SHEET_STORAGE", "redis")
	s.T().Setenv("REDIS_ADDR", "cache:6380")
	s.T().Setenv("SHEET_SLOT", "campaign.one")
	s.T().Setenv("SHEET_AUTOSAVE", "false")
	s.T().Setenv("SHEET_LOG_LEVEL", "DEBUG")

	cfg, err := config.Parse()
	s.Require().NoError(err)

	s.Equal(config.StorageRedis, cfg.Storage)
	s.Equal("cache:6380", cfg.RedisAddr)
	s.Equal("campaign.one", cfg.Slot)
	s.False(cfg.Autosave)
	s.Equal(slog.LevelDebug, cfg.Level())
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *config.Config) {},
		},
		{
			name:    "unknown storage",
			mutate:  func(c *config.Config) { c.Storage = "postgres" },
			wantErr: "SHEET_STORAGE",
		},
		{
			name:    "blank slot",
			mutate:  func(c *config.Config) { c.Slot = " " },
			wantErr: "SHEET_SLOT: is required",
		},
		{
			name:    "port out of range",
			mutate:  func(c *config.Config) { c.GRPCPort = 70000 },
			wantErr: "SHEET_GRPC_PORT",
		},
		{
			name:    "bad log level",
			mutate:  func(c *config.Config) { c.LogLevel = "loud" },
			wantErr: "SHEET_LOG_LEVEL",
		},
		{
			name:    "sqlite without path",
			mutate:  func(c *config.Config) { c.SQLitePath = "" },
			wantErr: "SHEET_SQLITE_PATH: is required",
		},
		{
			name: "memory needs no path",
			mutate: func(c *config.Config) {
				c.Storage = config.StorageMemory
				c.SQLitePath = ""
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := &config.Config{
				Storage:    config.StorageSQLite,
				SQLitePath: "data/sheet.db",
				RedisAddr:  "localhost:6379",
				Slot:       "vop.character.v1",
				GRPCPort:   50051,
				LogLevel:   "info",
			}
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				s.NoError(err)
				return
			}
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.wantErr)
		})
	}
}

func (s *ConfigTestSuite) TestParseRejectsInvalidEnvironment() {
	s.T().Setenv("SHEET_GRPC_PORT", "not-a-port")

	_, err := config.Parse()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestLoadDotEnv() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, ".env")
	s.Require().NoError(os.WriteFile(path, []byte("SHEET_STORAGE=memory\nSHEET_SLOT=from.dotenv\n"), 0o600))
	s.T().Cleanup(func() {
		_ = os.Unsetenv("SHEET_STORAGE")
		_ = os.Unsetenv("SHEET_SLOT")
	})

	cfg, err := config.Load(path, filepath.Join(dir, "missing.env"))
	s.Require().NoError(err)
	s.Equal(config.StorageMemory, cfg.Storage)
	s.Equal("from.dotenv", cfg.Slot)
}

func (s *ConfigTestSuite) TestLoadLeavesValidationToCaller() {
	s.T().Setenv("SHEET_STORAGE", "floppy")

	_, err := config.Parse()
	s.Require().Error(err)
	s.Contains(err.Error(), "SHEET_STORAGE")

	cfg, err := config.Load(filepath.Join(s.T().TempDir(), "missing.env"))
	s.Require().NoError(err)
	s.Equal(config.Storage("floppy"), cfg.Storage)
	s.Error(cfg.Validate())

	cfg.Storage = config.StorageMemory
	s.NoError(cfg.Validate())
}
