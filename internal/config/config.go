// Package config defines planloom's configuration, loaded through
// viper from a YAML file, environment variables, and defaults.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete planloom configuration
type Config struct {
	Paths   PathsConfig   `mapstructure:"paths"`
	Logging LoggingConfig `mapstructure:"logging"`
	Watch   WatchConfig   `mapstructure:"watch"`
}

// PathsConfig controls where plan documents live
type PathsConfig struct {
	// PlansDir is the directory holding plan documents (default: ".planloom/plans")
	PlansDir string `mapstructure:"plans_dir"`
}

// LoggingConfig controls the structured logger
type LoggingConfig struct {
	// Level is the minimum level to log: debug, info, warn, error
	Level string `mapstructure:"level"`
	// Dir is the directory for log files; empty means stderr
	Dir string `mapstructure:"dir"`
}

// WatchConfig controls the plan file watcher
type WatchConfig struct {
	// DebounceMs is how long to wait after a write event before
	// re-parsing, to coalesce editor save bursts
	DebounceMs int `mapstructure:"debounce_ms"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			PlansDir: filepath.Join(".planloom", "plans"),
		},
		Logging: LoggingConfig{
			Level: "info",
			Dir:   "",
		},
		Watch: WatchConfig{
			DebounceMs: 150,
		},
	}
}

// SetDefaults registers the default values with viper so they are
// available even without a config file
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("paths.plans_dir", defaults.Paths.PlansDir)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)

	viper.SetDefault("watch.debounce_ms", defaults.Watch.DebounceMs)
}

// Load unmarshals and validates the current viper state
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "planloom")
	}
	// Fall back to ~/.config/planloom
	home, err := os.UserHomeDir()
	if err != nil {
		return ".planloom"
	}
	return filepath.Join(home, ".config", "planloom")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
