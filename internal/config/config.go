package config

// Config holds runtime settings for the Serena CLI.
//
// Fields:
//   - DatabaseDSN: path to the local SQLite database file.
//   - LogLevel: minimum level for log output.
type Config struct {
	DatabaseDSN string
	LogLevel    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "serena.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
