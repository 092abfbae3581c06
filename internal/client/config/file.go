package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/salesdesk/internal/flagx"
	"github.com/dmitrijs2005/salesdesk/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for config file decoding. Pointer
// fields distinguish "absent" from zero values so a partial file only
// overrides what it names.
type FileConfig struct {
	ServerURL      *string         `json:"server_url" yaml:"server_url"`
	DashboardURL   *string         `json:"dashboard_url" yaml:"dashboard_url"`
	RequestTimeout *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	LogFile        *string         `json:"log_file" yaml:"log_file"`
	LogLevel       *string         `json:"log_level" yaml:"log_level"`
	HistoryLimit   *int            `json:"history_limit" yaml:"history_limit"`
	PreviewRows    *int            `json:"preview_rows" yaml:"preview_rows"`
}

// parseFile overlays Config with values loaded from a JSON or YAML file.
//
// The path comes from the -c or -config flag; without it nothing is loaded.
// Panics on read or decode errors (caller should recover if desired).
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc FileConfig) apply(cfg *Config) {
	if fc.ServerURL != nil {
		cfg.ServerURL = *fc.ServerURL
	}
	if fc.DashboardURL != nil {
		cfg.DashboardURL = *fc.DashboardURL
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.LogFile != nil {
		cfg.LogFile = *fc.LogFile
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.HistoryLimit != nil {
		cfg.HistoryLimit = *fc.HistoryLimit
	}
	if fc.PreviewRows != nil {
		cfg.PreviewRows = *fc.PreviewRows
	}
}
