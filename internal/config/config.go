package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Story   StoryConfig   `mapstructure:"story"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Log     LogConfig     `mapstructure:"log"`
	UI      UIConfig      `mapstructure:"ui"`
	// Keys replaces the default keys of an action, e.g. toggle-like = ["L"].
	Keys map[string][]string `mapstructure:"keys"`
}

// StoryConfig holds story viewer settings.
type StoryConfig struct {
	Dwell time.Duration `mapstructure:"dwell"`
}

// CatalogConfig points at an alternate sample data file. Empty means the
// embedded sample.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig holds log file settings.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	StartTab string `mapstructure:"start_tab"`
	Mouse    bool   `mapstructure:"mouse"`
}

var ErrInvalidDwell = errors.New("story.dwell must be positive")

// Load reads configuration from file and env. Env var overrides use prefix STORYGRAM_.
func Load() (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("story.dwell", "5s")
	v.SetDefault("catalog.path", "")
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "storygram", "storygram.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.start_tab", "home")
	v.SetDefault("ui.mouse", true)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("STORYGRAM_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "storygram"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("STORYGRAM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !(cfgPath != "" && errors.Is(err, os.ErrNotExist)) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Story.Dwell <= 0 {
		return Config{}, fmt.Errorf("%w: got %s", ErrInvalidDwell, c.Story.Dwell)
	}
	c.UI.StartTab = strings.ToLower(strings.TrimSpace(c.UI.StartTab))
	return c, nil
}
