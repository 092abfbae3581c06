package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/salesdesk/internal/flagx"
)

// knownFlags lists the flags owned by this package. Everything else on the
// command line belongs to the command parser.
var knownFlags = []string{"-a", "-d", "-t", "-l", "-v", "-n"}

// parseFlags populates selected Config fields from command-line flags.
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the sales data API")
	fs.StringVar(&cfg.DashboardURL, "d", cfg.DashboardURL, "dashboard link")
	timeout := fs.Int("t", 0, "request timeout (in seconds, 0 = none)")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "log file path")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")
	fs.IntVar(&cfg.HistoryLimit, "n", cfg.HistoryLimit, "chat history limit")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}

// Flags describes the flags parsed by this package for command help output.
func Flags() string {
	return `  -a string   base URL of the sales data API
  -c string   config file (JSON or YAML)
  -d string   dashboard link
  -t int      request timeout in seconds (0 = none)
  -l string   log file path
  -v string   log level (debug, info, warn, error)
  -n int      chat history limit`
}
