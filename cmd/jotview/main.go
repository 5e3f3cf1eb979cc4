// Copyright 2026 The Jotview Authors
// SPDX-License-Identifier: Apache-2.0

// jotview is an interactive terminal client for reviewing facility
// maintenance jotforms. It fetches the full set of submissions from
// the jotform service at startup and presents them as a sorted,
// filterable table with a scrollable description pane. Status changes
// made in the interface post back to the service immediately.
//
// The service endpoint and appearance come from an optional YAML
// config file (JOTVIEW_CONFIG or --config); flags override individual
// fields. With no configuration at all the viewer connects to
// http://localhost:3030, which is where jotview-mock-service listens.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/klauspost/compress/zstd"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/ljt019/jotview/lib/cli"
	"github.com/ljt019/jotview/lib/config"
	"github.com/ljt019/jotview/lib/jotclient"
	"github.com/ljt019/jotview/lib/jotformui"
	"github.com/ljt019/jotview/lib/tui"
	"github.com/ljt019/jotview/lib/version"
)

func main() {
	if err := run(); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	var serviceURL string
	var themeFlag string
	var logOutput string

	flagSet := pflag.NewFlagSet("jotview", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to YAML config file (default: $JOTVIEW_CONFIG)")
	flagSet.StringVar(&serviceURL, "service-url", "", "jotform service base URL (overrides config)")
	flagSet.StringVar(&themeFlag, "theme", "", "color palette: auto, dark, or light (overrides config)")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file; a .zst suffix enables compression")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match the other
	// jotview binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("jotview")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	args := flagSet.Args()
	if len(args) > 0 {
		return cli.Validation("unexpected argument: %s", args[0])
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return cli.Validation("cannot load configuration: %w", err)
	}
	if serviceURL != "" {
		cfg.Service.BaseURL = serviceURL
	}
	if themeFlag != "" {
		cfg.UI.Theme = config.Theme(themeFlag)
	}
	if logOutput != "" {
		cfg.Log.Output = logOutput
	}
	if err := cfg.Validate(); err != nil {
		return cli.Validation("invalid configuration: %w", err)
	}

	// Log routing. The TUI handler surfaces warnings and errors in
	// the status area instead of writing to stderr (which would
	// corrupt the alt-screen display). The optional file handler
	// captures all records at the configured level for post-mortem
	// debugging. The model reports its own failures in the notice
	// line directly, so its records bypass the TUI handler and go
	// only to the file.
	tuiHandler := jotformui.NewTUILogHandler(slog.LevelWarn)

	var fileHandler slog.Handler
	if cfg.Log.Output != "" {
		handler, closeLog, fileErr := openFileLogHandler(cfg.Log.Output, logLevel(cfg.Log.Level))
		if fileErr != nil {
			return cli.Validation("cannot open log file %s: %w", cfg.Log.Output, fileErr)
		}
		defer closeLog()
		fileHandler = handler
	}

	clientLogger := slog.New(tuiHandler)
	modelLogger := slog.New(slog.DiscardHandler)
	if fileHandler != nil {
		clientLogger = slog.New(fanoutHandler{tuiHandler, fileHandler})
		modelLogger = slog.New(fileHandler)
	}

	client, err := jotclient.NewClient(jotclient.Config{
		BaseURL: cfg.Service.BaseURL,
		Logger:  clientLogger,
	})
	if err != nil {
		return cli.Validation("cannot create service client: %w", err)
	}

	// Initial fetch is synchronous: the viewer starts with a full
	// table or not at all, and connection problems surface as plain
	// terminal errors rather than inside the alternate screen.
	fetchContext, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout())
	forms, err := client.FetchJotforms(fetchContext)
	cancel()
	if err != nil {
		return cli.Transient("cannot fetch jotforms from %s: %w", client.BaseURL(), err).
			WithHint("Check that the jotform service is running and reachable. " +
				"Start a local fixture-backed service with 'jotview-mock-service'.")
	}

	model := jotformui.NewModel(client, forms)
	model.SetTheme(resolveTheme(cfg.UI.Theme))
	model.SetLogger(modelLogger)
	model.SetRequestTimeout(cfg.RequestTimeout())

	program := tea.NewProgram(model, tea.WithAltScreen())
	tuiHandler.SetProgram(program)

	_, err = program.Run()
	return err
}

// loadConfig loads the configuration from the --config flag path when
// given, falling back to the JOTVIEW_CONFIG environment variable and
// the built-in defaults.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

// resolveTheme maps the configured theme choice to a palette. Auto
// probes the terminal background, which has to happen before the
// program takes over the screen.
func resolveTheme(choice config.Theme) tui.Theme {
	switch choice {
	case config.ThemeLight:
		return tui.LightTheme
	case config.ThemeDark:
		return tui.DefaultTheme
	default:
		if !termenv.HasDarkBackground() {
			return tui.LightTheme
		}
		return tui.DefaultTheme
	}
}

// logLevel maps a config level string to a slog.Level. Validate has
// already rejected unknown values; anything else means info.
func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// openFileLogHandler creates a slog.JSONHandler that writes to the
// given file path. A .zst suffix wraps the file in a zstd stream.
// Returns the handler, a cleanup function that flushes and closes the
// file, and any error. The file is created or truncated.
func openFileLogHandler(path string, level slog.Level) (slog.Handler, func(), error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	options := &slog.HandlerOptions{Level: level}

	if strings.HasSuffix(path, ".zst") {
		encoder, err := zstd.NewWriter(file, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			file.Close()
			return nil, nil, err
		}
		handler := slog.NewJSONHandler(encoder, options)
		return handler, func() {
			encoder.Close()
			file.Close()
		}, nil
	}

	handler := slog.NewJSONHandler(file, options)
	return handler, func() { file.Close() }, nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `jotview: interactive terminal UI for reviewing maintenance jotforms.

Fetches every submitted jotform from the service, sorts them so that
in-progress work leads and unplanned work trails, and opens a
full-screen review table. Press 'e' on a row to advance its status;
the change is saved to the service in the background. '/' filters,
'r' re-fetches, 'q' quits.

Without configuration the viewer connects to http://localhost:3030.
Set JOTVIEW_CONFIG or pass --config to point at a YAML config file;
individual flags override file values.

Usage:
  jotview [flags]

Examples:
  # Open the viewer against the default local service
  jotview

  # Point at a deployed jotform service
  jotview --service-url http://jotservice.museum.internal:3030

  # Force the light palette and keep a compressed debug log
  jotview --theme light --log-output /tmp/jotview.log.zst

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}

// fanoutHandler is a slog.Handler that sends each record to multiple
// underlying handlers. A record is enabled if any sub-handler is
// enabled for that level.
type fanoutHandler []slog.Handler

func (handlers fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (handlers fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (handlers fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithAttrs(attrs)
	}
	return derived
}

func (handlers fanoutHandler) WithGroup(name string) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithGroup(name)
	}
	return derived
}
