package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "vault.db", c.DatabaseDSN)
	assert.Empty(t, c.ArchivePath)
	assert.False(t, c.AddLegacyTOTPFields)
	assert.False(t, c.AddOTPAuthURL)
}

func TestParseEnv_OverlaysValues(t *testing.T) {
	t.Setenv(EnvArchivePath, "/tmp/export.1pux")
	t.Setenv(EnvDatabaseDSN, "/tmp/vault.db")
	t.Setenv(EnvAddLegacyTOTPFields, "true")
	t.Setenv(EnvAddOTPAuthURL, "1")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "/tmp/export.1pux", c.ArchivePath)
	assert.Equal(t, "/tmp/vault.db", c.DatabaseDSN)
	assert.True(t, c.AddLegacyTOTPFields)
	assert.True(t, c.AddOTPAuthURL)
}

func TestParseEnv_IgnoresMalformedBooleans(t *testing.T) {
	t.Setenv(EnvAddLegacyTOTPFields, "yes-please")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.False(t, c.AddLegacyTOTPFields)
}

func TestParseFlags_OverridesConfig(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd", "-f", "/data/export.1pux", "-d", "/data/vault.db"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "/data/export.1pux", c.ArchivePath)
	assert.Equal(t, "/data/vault.db", c.DatabaseDSN)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "vault.db", cfg.DatabaseDSN)
}
