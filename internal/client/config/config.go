// Package config holds runtime settings for the recondesk CLI.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the client.
//
// Fields:
//   - APIBaseURL: base URL of the scanning backend's REST API.
//   - RequestTimeout: transport-level deadline for backend calls; scans run
//     within this budget, the client adds no timeout of its own.
//   - DatabasePath: location of the local SQLite database.
//   - AdminSecret: credential for the admin-only endpoints. Never a
//     constant in code; supplied via environment only.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
	AdminSecret    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 320 * time.Second
	c.DatabasePath = "recondesk.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment, and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

func parseEnv(cfg *Config) {
	if v := os.Getenv("RECONDESK_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("RECONDESK_ADMIN_SECRET"); v != "" {
		cfg.AdminSecret = v
	}
}
