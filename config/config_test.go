package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadEnvDefaults(t *testing.T) {
	cfg, err := LoadEnv()
	require.NoError(t, err)
	require.Equal(t, ":8083", cfg.Server.GRPCPort)
	require.True(t, cfg.Inventory.AllowNegative)
	require.Equal(t, int64(3), cfg.Inventory.LowStockThreshold)
	require.Equal(t, int64(5), cfg.Inventory.RestockThreshold)
	require.Equal(t, "RETURN", cfg.Ledger.ReturnTag)
	require.Equal(t, "0 21 * * *", cfg.Reminder.Spec)
	require.Equal(t, 1, cfg.SQLite.MaxOpenConns)
	require.Equal(t, 5*time.Second, cfg.SQLite.BusyTimeout)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("INVENTORY_ALLOW_NEGATIVE", "false")
	t.Setenv("LEDGER_TIMEZONE", "Asia/Manila")
	t.Setenv("SQLITE_PATH", "/tmp/pos.db")

	cfg, err := LoadEnv()
	require.NoError(t, err)
	require.False(t, cfg.Inventory.AllowNegative)
	require.Equal(t, "/tmp/pos.db", cfg.SQLite.Path)

	loc, err := cfg.Ledger.Location()
	require.NoError(t, err)
	require.Equal(t, "Asia/Manila", loc.String())
}

func TestLoadEnvRejectsBadTimezone(t *testing.T) {
	t.Setenv("LEDGER_TIMEZONE", "Mars/Olympus")

	_, err := LoadEnv()
	require.Error(t, err)
}

func TestLoadEnvRejectsNegativeThreshold(t *testing.T) {
	t.Setenv("INVENTORY_LOW_STOCK_THRESHOLD", "-1")

	_, err := LoadEnv()
	require.Error(t, err)
}
