// config.go - YAML configuration with defaults
package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything tunable about the app. Values come from the
// optional YAML config file; command-line flags override file values.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Cache   CacheConfig   `yaml:"cache"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type CacheConfig struct {
	TTLSeconds int `yaml:"ttl_seconds"`
}

type UIConfig struct {
	Theme  int    `yaml:"theme"`
	SortBy string `yaml:"sort_by"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// defaultConfig returns the built-in configuration.
func defaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:        DefaultBaseURL,
			TimeoutSeconds: int(DefaultTimeout.Seconds()),
		},
		Cache: CacheConfig{
			TTLSeconds: int(DefaultCacheTTL.Seconds()),
		},
		UI: UIConfig{
			Theme:  DefaultThemeIndex,
			SortBy: DefaultSortKey,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// loadConfig reads the YAML file at path on top of the defaults. An
// empty path returns the defaults unchanged.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	if c.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("api.timeout_seconds must be positive, got %d", c.API.TimeoutSeconds)
	}
	if c.Cache.TTLSeconds <= 0 {
		return fmt.Errorf("cache.ttl_seconds must be positive, got %d", c.Cache.TTLSeconds)
	}
	if c.UI.Theme < 0 || c.UI.Theme >= len(themes) {
		return fmt.Errorf("ui.theme must be between 0 and %d, got %d", len(themes)-1, c.UI.Theme)
	}
	if !validSortKey(c.UI.SortBy) {
		return fmt.Errorf("ui.sort_by must be one of %v, got %q", sortKeys, c.UI.SortBy)
	}
	return nil
}

func (c Config) timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

func (c Config) cacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

func validSortKey(key string) bool {
	for _, k := range sortKeys {
		if k == key {
			return true
		}
	}
	return false
}
