package config

import "time"

// Config holds runtime settings for the salesdesk client.
//
// Fields:
//   - ServerURL: base URL of the sales data API.
//   - DashboardURL: external dashboard shown as a link on the dashboard view.
//   - RequestTimeout: per-request timeout; zero leaves requests unbounded.
//   - LogFile: rotated JSON log file; empty disables file logging.
//   - LogLevel: debug, info, warn or error.
//   - HistoryLimit: chat turns kept in memory; zero or less keeps all.
//   - PreviewRows: cleaned data rows shown in the preview table.
type Config struct {
	ServerURL      string
	DashboardURL   string
	RequestTimeout time.Duration
	LogFile        string
	LogLevel       string
	HistoryLimit   int
	PreviewRows    int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8000"
	c.DashboardURL = "https://baserow.io/public/grid/88RLy_64wdmhL3iymIeaZXutygoeoFYXnC3zHDoBYJE"
	c.RequestTimeout = 0
	c.LogFile = "logs/salesdesk.log"
	c.LogLevel = "info"
	c.HistoryLimit = 200
	c.PreviewRows = 10
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
