package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	validCatalogFormats = []string{"auto", "json", "yaml", "yml", "csv"}
	validBackends       = []string{BackendJSON, BackendSQLite}
	validLogLevels      = []string{"debug", "info", "warn", "warning", "error"}
	validLogFormats     = []string{"text", "json"}
)

// Validate checks enum fields and required values.
// Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Catalog.Path) == "" {
		return fmt.Errorf("catalog.path is required")
	}
	if err := oneOf("catalog.format", c.Catalog.Format, validCatalogFormats); err != nil {
		return err
	}
	if err := oneOf("history.backend", c.History.Backend, validBackends); err != nil {
		return err
	}
	if err := oneOf("log.level", c.Log.Level, validLogLevels); err != nil {
		return err
	}
	if err := oneOf("log.format", c.Log.Format, validLogFormats); err != nil {
		return err
	}
	for from, to := range c.Sampling.LocationAliases {
		if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
			return fmt.Errorf("sampling.location_aliases: empty alias %q -> %q", from, to)
		}
	}
	return nil
}

func oneOf(field, value string, valid []string) error {
	if slices.Contains(valid, strings.ToLower(value)) {
		return nil
	}
	return fmt.Errorf("%s must be one of %s (got %q)", field, strings.Join(valid, ", "), value)
}
