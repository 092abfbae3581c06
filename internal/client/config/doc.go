// Package config loads runtime configuration for the salesdesk client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file (see parseFile) selected via flags: -c or -config.
//     Files ending in .yaml or .yml are read as YAML, anything else as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the sales data API
//	-d string   dashboard link
//	-t int      request timeout (seconds, 0 = none)
//	-l string   log file path ("" disables file logging)
//	-v string   log level
//	-n int      chat history limit (turns)
//
// # File schema
//
// Durations use timex.Duration, so values can be either strings like "30s"
// or integer nanoseconds:
//
//	{
//	  "server_url": "http://localhost:8000",
//	  "request_timeout": "30s",
//	  "history_limit": 200
//	}
//
// Note: This package does not read environment variables directly; use the
// config file or flags to configure values.
package config
