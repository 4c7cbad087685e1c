// Package config assembles runtime settings for the admin console from
// defaults, the environment, an optional JSON file, and command-line flags.
// Later sources take precedence over earlier ones.
package config

// Config holds runtime settings for the admin console.
//
// Fields:
//   - AuthorityAddr: base URL of the remote authority, e.g. "http://127.0.0.1:8080".
//   - DatabasePath: sqlite file holding the persisted session credential.
type Config struct {
	AuthorityAddr string
	DatabasePath  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.AuthorityAddr = "http://127.0.0.1:8080"
	c.DatabasePath = "console.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, JSON (if a config file is given), and flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
