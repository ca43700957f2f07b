package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"affiliate-ledger/internal/config/configs"
	"affiliate-ledger/internal/core/domain"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, configs.StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, "USD", cfg.Ledger.DefaultCurrency)
	assert.Equal(t, "0.1", cfg.Ledger.DefaultCommissionRate.String())

	s, err := cfg.Attribution.Settings()
	require.NoError(t, err)
	assert.Equal(t, domain.LastClick, s.Model)
	assert.Equal(t, domain.AttributionWindow{Value: 30, Unit: domain.UnitDays}, s.Window)
	assert.Equal(t, 30*24*time.Hour, s.CookieExpiry)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("ATTRIBUTION_MODEL", "time_decay")
	t.Setenv("ATTRIBUTION_WINDOW_VALUE", "48")
	t.Setenv("ATTRIBUTION_WINDOW_UNIT", "hours")
	t.Setenv("FRAUD_BLOCKED_NETWORKS", "10.0.0.0/8,192.0.2.1")
	t.Setenv("LEDGER_DEFAULT_COMMISSION_RATE", "0.25")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, configs.StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, []string{"10.0.0.0/8", "192.0.2.1"}, cfg.Fraud.Rules().BlockedNetworks)
	assert.Equal(t, "0.25", cfg.Ledger.DefaultCommissionRate.String())

	s, err := cfg.Attribution.Settings()
	require.NoError(t, err)
	assert.Equal(t, domain.TimeDecay, s.Model)
	assert.Equal(t, 48, s.Window.Value)
}

func TestLoadAcceptsZeroCommissionRate(t *testing.T) {
	t.Setenv("LEDGER_DEFAULT_COMMISSION_RATE", "0")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Ledger.DefaultCommissionRate.IsZero())
}

func TestLoadRejectsInvalidSections(t *testing.T) {
	for name, env := range map[string][2]string{
		"storage":      {"STORAGE_DRIVER", "mongo"},
		"attribution":  {"ATTRIBUTION_WINDOW_UNIT", "weeks"},
		"ledger":       {"LEDGER_DEFAULT_COMMISSION_RATE", "1.5"},
		"ledger scale": {"LEDGER_DEFAULT_COMMISSION_RATE", "0.12345"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Setenv(env[0], env[1])
			_, err := Load()
			require.Error(t, err)
		})
	}
}
