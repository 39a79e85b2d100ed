// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// DefaultConfigDir is the directory name for datepicker configuration and data.
	DefaultConfigDir = ".datepicker"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultCatalogFile is the default idea catalog file name.
	DefaultCatalogFile = "ideas.json"
	// DefaultHistoryJSONFile is the history file used by the json backend.
	DefaultHistoryJSONFile = "history.json"
	// DefaultHistoryDBFile is the database file used by the sqlite backend.
	DefaultHistoryDBFile = "history.db"
)

// History backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds static configuration (read-only after load).
type Config struct {
	Catalog  CatalogConfig  `yaml:"catalog"`
	History  HistoryConfig  `yaml:"history"`
	Sampling SamplingConfig `yaml:"sampling"`
	Display  DisplayConfig  `yaml:"display"`
	Log      LogConfig      `yaml:"log"`
}

// CatalogConfig locates the idea catalog.
type CatalogConfig struct {
	// Path is relative to the base directory unless absolute.
	Path string `yaml:"path" env:"DATEPICKER_CATALOG_PATH" env-default:".datepicker/ideas.json"`
	// Format is auto (by extension), json, yaml or csv.
	Format string `yaml:"format" env:"DATEPICKER_CATALOG_FORMAT" env-default:"auto"`
}

// HistoryConfig selects where accepted dates are stored.
type HistoryConfig struct {
	Backend string `yaml:"backend" env:"DATEPICKER_HISTORY_BACKEND" env-default:"json"`
	// Path defaults to history.json or history.db in the config directory.
	Path string `yaml:"path,omitempty" env:"DATEPICKER_HISTORY_PATH"`
}

// SamplingConfig tunes the sampling engine.
type SamplingConfig struct {
	LocationAliases map[string]string `yaml:"location_aliases" env:"DATEPICKER_LOCATION_ALIASES" env-default:"indoor:home,outdoor:outside"`
	// Seed makes sampling repeatable; 0 seeds from the clock.
	Seed uint64 `yaml:"seed,omitempty" env:"DATEPICKER_SEED"`
}

// DisplayConfig holds CLI presentation settings.
type DisplayConfig struct {
	Currency string `yaml:"currency" env:"DATEPICKER_CURRENCY" env-default:"₹"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"DATEPICKER_LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"DATEPICKER_LOG_FORMAT" env-default:"text"`
}

// Default returns a Config with default values and no environment overrides.
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path:   filepath.Join(DefaultConfigDir, DefaultCatalogFile),
			Format: "auto",
		},
		History: HistoryConfig{
			Backend: BackendJSON,
		},
		Sampling: SamplingConfig{
			LocationAliases: map[string]string{
				"indoor":  "home",
				"outdoor": "outside",
			},
		},
		Display: DisplayConfig{
			Currency: "₹",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads configuration from the .datepicker directory in basePath and
// from environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// A missing config file is not an error; ENV and defaults are used.
func Load(basePath string) (*Config, error) {
	var cfg Config

	configFile := ConfigFilePath(basePath)
	_, err := os.Stat(configFile)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(configFile, &cfg); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("reading config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("checking config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// CatalogPath returns the absolute catalog location for basePath.
func (c *Config) CatalogPath(basePath string) string {
	return resolve(basePath, c.Catalog.Path)
}

// HistoryPath returns the history file or database location for basePath,
// picking the backend's default file when no path is configured.
func (c *Config) HistoryPath(basePath string) string {
	if c.History.Path != "" {
		return resolve(basePath, c.History.Path)
	}
	if c.History.Backend == BackendSQLite {
		return filepath.Join(ConfigDir(basePath), DefaultHistoryDBFile)
	}
	return filepath.Join(ConfigDir(basePath), DefaultHistoryJSONFile)
}

func resolve(basePath, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(basePath, path)
}

// ConfigDir returns the path to the .datepicker config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// Exists checks if a datepicker config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
