package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("SAVEUP_CURRENCY", "")
	t.Setenv("SAVEUP_LOG_FILE", "")
	SetPath("")
	t.Cleanup(func() { SetPath("") })
	return dir
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	dir := useTempConfig(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.False(t, Exists())
	assert.Equal(t, filepath.Join(dir, "saveup", "config.toml"), Path())
}

func TestSaveThenLoad(t *testing.T) {
	useTempConfig(t)

	cfg := DefaultConfig()
	cfg.Budget.SavingsRate = 20
	cfg.Budget.GoalName = "House"
	cfg.Budget.GoalMonths = 36
	cfg.Appearance.Theme = "tokyo-night"
	require.NoError(t, Save(cfg))
	require.True(t, Exists())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	useTempConfig(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	SetPath(path)

	require.NoError(t, os.WriteFile(path, []byte("[budget]\ngoal_name = \"Car\"\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Car", cfg.Budget.GoalName)
	assert.Equal(t, 35.0, cfg.Budget.SavingsRate)
	assert.Equal(t, "flexoki-dark", cfg.Appearance.Theme)
}

func TestLoad_InvalidTOML(t *testing.T) {
	useTempConfig(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	SetPath(path)
	require.NoError(t, os.WriteFile(path, []byte("[budget\n"), 0o600))

	_, err := Load()
	assert.ErrorContains(t, err, "parsing config")
}

func TestValidate(t *testing.T) {
	useTempConfig(t)
	assert.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.Budget.SavingsRate = 120
	cfg.Budget.GoalMonths = 0
	cfg.Budget.Currency = "XXZ"
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "savings_rate")
	assert.ErrorContains(t, err, "goal_months")
	assert.ErrorContains(t, err, "currency")
}

func TestValidate_NonFiniteRate(t *testing.T) {
	useTempConfig(t)
	path := filepath.Join(t.TempDir(), "nan.toml")
	SetPath(path)

	for _, v := range []string{"nan", "inf", "-inf"} {
		require.NoError(t, os.WriteFile(path, []byte("[budget]\nsavings_rate = "+v+"\n"), 0o600))

		cfg, err := Load()
		require.NoError(t, err, v)
		assert.ErrorContains(t, cfg.Validate(), "savings_rate", v)
	}
}

func TestEnvOverrides(t *testing.T) {
	useTempConfig(t)
	cfg := DefaultConfig()
	cfg.Logging.File = "/tmp/from-config.log"

	assert.Equal(t, "USD", GetCurrency(cfg))
	assert.Equal(t, "/tmp/from-config.log", GetLogFile(cfg))

	t.Setenv("SAVEUP_CURRENCY", "eur")
	t.Setenv("SAVEUP_LOG_FILE", "/tmp/from-env.log")
	assert.Equal(t, "EUR", GetCurrency(cfg))
	assert.Equal(t, "/tmp/from-env.log", GetLogFile(cfg))
}
