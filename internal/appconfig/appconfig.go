// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"os"
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// legacyConfigPath is the path to the configuration file used in previous versions.
	legacyConfigPath = "config.json"
	// defaultQueryTimeout is the default timeout for a single warehouse query.
	defaultQueryTimeout = 120 * time.Second
	// defaultExportPath is where the HTML report lands when the config omits a path.
	defaultExportPath = "reports/revlens.html"
)

// defaultScopes lists the warehouse tables the dashboard must be able to read.
var defaultScopes = []string{
	"temp_sales_performance",
	"modelled_rep_scorecard",
}

// Config represents the top-level application configuration.
type Config struct {
	Warehouse  Warehouse `json:"warehouse"`
	Debug      bool      `json:"debug"`
	Timeout    int       `json:"timeout,omitempty"`
	ExportPath string    `json:"export,omitempty"`
	LogFile    string    `json:"logFile,omitempty"`
	ConfigPath string    `json:"-"`
}

// Warehouse describes the warehouse connection the dashboard queries.
type Warehouse struct {
	Name   string   `json:"name"`
	DSN    string   `json:"dsn"`
	Scopes []string `json:"scopes,omitempty"`
}

// QueryTimeout returns the timeout duration for warehouse queries, falling
// back to the default if not specified.
func (c Config) QueryTimeout() time.Duration {
	if c.Timeout <= 0 {
		return defaultQueryTimeout
	}
	return time.Duration(c.Timeout) * time.Second
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "revlens.log"
}

// ExportFilePath returns the HTML report destination, applying a default if not set.
func (c Config) ExportFilePath() string {
	if path := strings.TrimSpace(c.ExportPath); path != "" {
		return path
	}
	return defaultExportPath
}

// ScopeList returns the warehouse read scopes to request before loading data.
func (c Config) ScopeList() []string {
	if len(c.Warehouse.Scopes) > 0 {
		return c.Warehouse.Scopes
	}
	return defaultScopes
}

// ResolveConfigPath returns the config file the application should read.
// When the caller asks for the default path and it does not exist, the
// legacy location from previous versions is tried before giving up.
func ResolveConfigPath(path string) string {
	if path == "" {
		path = DefaultConfigPath
	}
	if path != DefaultConfigPath {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	if _, err := os.Stat(legacyConfigPath); err == nil {
		return legacyConfigPath
	}
	return path
}
