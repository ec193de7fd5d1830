package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.timeout())
	assert.Equal(t, DefaultCacheTTL, cfg.cacheTTL())
	assert.Equal(t, DefaultSortKey, cfg.UI.SortBy)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
api:
  base_url: http://localhost:8000
  timeout_seconds: 10
cache:
  ttl_seconds: 120
ui:
  theme: 2
  sort_by: income
logging:
  level: debug
  file: /tmp/statesdash.log
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.timeout())
	assert.Equal(t, 2*time.Minute, cfg.cacheTTL())
	assert.Equal(t, 2, cfg.UI.Theme)
	assert.Equal(t, "income", cfg.UI.SortBy)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/statesdash.log", cfg.Logging.File)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache:\n  ttl_seconds: 60\n"), 0600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, time.Minute, cfg.cacheTTL())
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL, "unset sections keep defaults")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [not a mapping"), 0600))

	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty base url", func(c *Config) { c.API.BaseURL = "" }},
		{"zero timeout", func(c *Config) { c.API.TimeoutSeconds = 0 }},
		{"negative ttl", func(c *Config) { c.Cache.TTLSeconds = -1 }},
		{"theme out of range", func(c *Config) { c.UI.Theme = len(themes) }},
		{"unknown sort key", func(c *Config) { c.UI.SortBy = "nope" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.validate())
		})
	}
}
