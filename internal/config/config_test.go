package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, ":8000", cfg.Addr())
	assert.Equal(t, 360, cfg.MaxTermMonths)
	assert.Equal(t, "BancoUENO", cfg.DefaultBank)
	assert.Equal(t, "info", cfg.LoggerConfig().Level)
	assert.Equal(t, "stderr", cfg.LoggerConfig().Output)
}

func TestLoadConfig_LogOutput(t *testing.T) {
	t.Setenv("LOG_OUTPUT", "/var/log/loancalc.log")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/var/log/loancalc.log", cfg.LoggerConfig().Output)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("MAX_TERM_MONTHS", "120")
	t.Setenv("MAX_RATE", "not-a-number")
	t.Setenv("DEFAULT_BANK", "BancoGNB")
	t.Setenv("BANK_RATES", "BancoGNB=0.13")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, 120, cfg.MaxTermMonths)
	assert.Equal(t, 2.0, cfg.MaxRate, "invalid value falls back to default")

	table, err := cfg.RateTable()
	require.NoError(t, err)
	assert.Equal(t, 0.13, table["BancoGNB"])
}

func TestLoadConfig_InvalidLimits(t *testing.T) {
	t.Setenv("MAX_TERM_MONTHS", "0")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestRateTable_UnknownDefaultBank(t *testing.T) {
	cfg := &Config{DefaultBank: "BancoX"}

	_, err := cfg.RateTable()
	assert.Error(t, err)
}
