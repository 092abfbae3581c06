package main

import (
	"context"
	"fmt"
	"os"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/dmitrijs2005/salesdesk/internal/client/cli"
	"github.com/dmitrijs2005/salesdesk/internal/client/client"
	"github.com/dmitrijs2005/salesdesk/internal/client/config"
	"github.com/dmitrijs2005/salesdesk/internal/client/controller"
	"github.com/dmitrijs2005/salesdesk/internal/client/tui"
	"github.com/dmitrijs2005/salesdesk/internal/logging"
	"github.com/spf13/cobra"
)

// Flag parsing is left to the config package, which reads os.Args itself;
// cobra only routes subcommands here.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:                "salesdesk",
		Short:              "Upload sales data, preview the cleaned result and ask questions about it",
		Long:               "Terminal client for the sales data service.\n\nFlags:\n" + config.Flags(),
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if wantsHelp(args) {
				return cmd.Help()
			}
			return runTUI(cmd.Context())
		},
	}
	root.AddCommand(newReplCmd())
	return root
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "repl",
		Short:              "Start the line-oriented shell",
		Long:               "Line-oriented shell for the sales data service.\n\nFlags:\n" + config.Flags(),
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if wantsHelp(args) {
				return cmd.Help()
			}
			return runREPL(cmd.Context())
		},
	}
}

func wantsHelp(args []string) bool {
	return slices.ContainsFunc(args, func(a string) bool {
		return a == "-h" || a == "--help" || a == "-help"
	})
}

func runTUI(ctx context.Context) error {
	cfg := config.LoadConfig()

	logger, closeLog, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer closeLog()

	ctrl, err := newController(cfg, logger)
	if err != nil {
		return err
	}
	defer ctrl.Close(ctx)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		logger.Warn(ctx, "markdown renderer unavailable", "error", err)
		renderer = nil
	}

	m := tui.New(ctx, ctrl, tui.Options{
		DashboardURL: cfg.DashboardURL,
		PreviewRows:  cfg.PreviewRows,
		HistoryLimit: cfg.HistoryLimit,
		Markdown:     renderer,
	})

	logger.Info(ctx, "starting ui", "server", cfg.ServerURL)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		logger.Error(ctx, "ui stopped", "error", err)
		return err
	}
	return nil
}

func runREPL(ctx context.Context) error {
	cfg := config.LoadConfig()

	logger, closeLog, err := newLogger(cfg, true)
	if err != nil {
		return err
	}
	defer closeLog()

	ctrl, err := newController(cfg, logger)
	if err != nil {
		return err
	}

	cli.NewApp(cfg, ctrl, logger).Run(ctx)
	return nil
}

func newController(cfg *config.Config, logger logging.Logger) (*controller.Controller, error) {
	apiClient, err := client.NewSalesClient(cfg.ServerURL,
		client.WithTimeout(cfg.RequestTimeout),
		client.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	return controller.NewFromClient(apiClient, logger), nil
}

// newLogger writes to the rotated log file when one is configured. Without a
// file the REPL logs warnings to stderr and the UI, which owns the terminal,
// logs nothing.
func newLogger(cfg *config.Config, console bool) (logging.Logger, func() error, error) {
	noop := func() error { return nil }

	if cfg.LogFile != "" {
		l, closeFn, err := logging.NewFileLogger(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			return nil, nil, fmt.Errorf("init file logger: %w", err)
		}
		return l, closeFn, nil
	}

	if !console {
		return logging.Nop(), noop, nil
	}

	l, err := logging.NewConsoleLogger(os.Stderr, "warn")
	if err != nil {
		return nil, nil, err
	}
	return l, noop, nil
}
