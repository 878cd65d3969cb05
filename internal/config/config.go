// Package config loads the baita settings from YAML with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the settings of the baita command.
type Config struct {
	Lang   string       `yaml:"lang"` // "it" or "en"
	Window WindowConfig `yaml:"window"`
	Scroll ScrollConfig `yaml:"scroll"`
	Log    LogConfig    `yaml:"log"`

	// EffectsDir holds per-section YAML files replacing the built-in
	// effects. Empty uses the built-ins only.
	EffectsDir string `yaml:"effects_dir"`
}

// WindowConfig sizes the desktop window.
type WindowConfig struct {
	Width   int  `yaml:"width"`
	Height  int  `yaml:"height"`
	ShowFPS bool `yaml:"show_fps"`
}

// ScrollConfig tunes input and the observer.
type ScrollConfig struct {
	WheelStep    float64 `yaml:"wheel_step"`
	PageDuration float64 `yaml:"page_duration"` // seconds
	WatchMargin  float64 `yaml:"watch_margin"`  // fraction of the viewport height
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	Debug bool   `yaml:"debug"` // frame stats and tree checks
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Lang: "it",
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
		},
		Scroll: ScrollConfig{
			WheelStep:    60,
			PageDuration: 0.6,
			WatchMargin:  0.5,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the config file location under the user config dir.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "baita.yaml"
	}
	return filepath.Join(dir, "baita", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if lang := os.Getenv("BAITA_LANG"); lang != "" {
		c.Lang = lang
	}
	if level := os.Getenv("BAITA_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if v := os.Getenv("BAITA_DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			c.Log.Debug = debug
		}
	}
	if dir := os.Getenv("BAITA_EFFECTS_DIR"); dir != "" {
		c.EffectsDir = dir
	}
}

// ValidLevels lists the accepted log levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Scroll.WheelStep <= 0 || c.Scroll.PageDuration < 0 {
		return fmt.Errorf("invalid scroll settings: wheel_step=%v page_duration=%v",
			c.Scroll.WheelStep, c.Scroll.PageDuration)
	}
	if c.Scroll.WatchMargin < 0 {
		return fmt.Errorf("invalid watch_margin: %v", c.Scroll.WatchMargin)
	}

	validLevel := false
	for _, l := range ValidLevels {
		if c.Log.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Log.Level, ValidLevels)
	}

	return nil
}
