// Package config provides configuration loading for Rubra using TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"rubra/omnibox"
	"rubra/settings"
)

// Settings file location
type Settings struct {
	Path string `toml:"path"` // empty = <config dir>/rubra/settings.json
}

// Search provider settings
type Search struct {
	Template string `toml:"template"` // %s is replaced with the encoded query
}

// Engine launch settings
type Engine struct {
	ChromePath     string `toml:"chromePath"`
	UserAgent      string `toml:"userAgent"`
	TimeoutSeconds int    `toml:"timeoutSeconds"`
	Headless       *bool  `toml:"headless"`
	HomePage       string `toml:"homePage"`
}

// Log output settings
type Log struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text or json
}

// Config is the main configuration struct
type Config struct {
	Settings Settings `toml:"settings"`
	Search   Search   `toml:"search"`
	Engine   Engine   `toml:"engine"`
	Log      Log      `toml:"log"`
}

// Default returns the default configuration.
func Default() *Config {
	headless := true
	return &Config{
		Search: Search{
			Template: omnibox.DefaultSearch,
		},
		Engine: Engine{
			TimeoutSeconds: 30,
			Headless:       &headless,
			HomePage:       "https://start.duckduckgo.com/",
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// configDir returns the configuration directory path.
func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "rubra"), nil
}

// ConfigPath returns the path to the user's config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load loads the user's config file layered on top of defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Default(), nil // Return defaults if we can't determine path
	}
	return LoadFile(path)
}

// LoadFile loads the config file at path layered on top of defaults.
// A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	userCfg, err := loadFromTOML(path)
	if err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}

	return merge(cfg, userCfg), nil
}

// loadFromTOML loads a TOML config file and returns the config.
func loadFromTOML(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config keys: %v", undecoded)
	}
	return &cfg, nil
}

// merge layers user config on top of defaults.
// Only non-zero values from user config override defaults.
func merge(defaults, user *Config) *Config {
	result := *defaults

	mergeString(&result.Settings.Path, user.Settings.Path)
	mergeString(&result.Search.Template, user.Search.Template)

	mergeString(&result.Engine.ChromePath, user.Engine.ChromePath)
	mergeString(&result.Engine.UserAgent, user.Engine.UserAgent)
	mergeString(&result.Engine.HomePage, user.Engine.HomePage)
	if user.Engine.TimeoutSeconds > 0 {
		result.Engine.TimeoutSeconds = user.Engine.TimeoutSeconds
	}
	if user.Engine.Headless != nil {
		result.Engine.Headless = user.Engine.Headless
	}

	mergeString(&result.Log.Level, user.Log.Level)
	mergeString(&result.Log.Format, user.Log.Format)

	return &result
}

func mergeString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

// SettingsPath returns the settings file to use.
func (c *Config) SettingsPath() (string, error) {
	if c.Settings.Path != "" {
		return c.Settings.Path, nil
	}
	return settings.DefaultPath()
}

// IsHeadless reports whether the engine should run without a window.
func (c *Config) IsHeadless() bool {
	return c.Engine.Headless == nil || *c.Engine.Headless
}

// Timeout returns the engine timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Engine.TimeoutSeconds) * time.Second
}

// DefaultTOML returns the default configuration as a TOML string.
// Used by init-config to generate a user config file.
func DefaultTOML() string {
	return `# Rubra configuration
# Save to ~/.config/rubra/config.toml and customize
# Only include settings you want to change from defaults

# Engine settings file (empty = ~/.config/rubra/settings.json)
[settings]
path = ""

# Address bar search fallback; %s is replaced with the encoded query
[search]
template = "https://duckduckgo.com/?q=%s"

# Browser engine
[engine]
chromePath = ""               # Path to Chrome/Chromium (empty = auto-detect)
userAgent = ""                # Empty = engine default
timeoutSeconds = 30
headless = true
homePage = "https://start.duckduckgo.com/"

# Logging
[log]
level = "info"                # debug, info, warn, error
format = "text"               # text or json
`
}

// FormatError formats a configuration error for user display.
func FormatError(err error) string {
	return fmt.Sprintf("Configuration error:\n\n%s", err.Error())
}
