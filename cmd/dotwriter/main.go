// Package main is the entry point for the dotwriter braille editor.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/dotwriter/internal/app"
	"github.com/dshills/dotwriter/internal/config"
	"github.com/dshills/dotwriter/internal/logging"
	"github.com/dshills/dotwriter/internal/prefs"
	"github.com/dshills/dotwriter/internal/ui"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath string
	mode       string
	layout     string
	statePath  string
	logLevel   string
	logFile    string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath, opts.loadOptions()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// The terminal owns stdout and stderr, so logs only go to a file.
	logger := logging.NewNull()
	if cfg.Logging.File != "" {
		f, err := logging.OpenFile(cfg.Logging.File)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer f.Close()
		logger = newLogger(f, cfg.Logging.Level)
	}

	store, closeStore := openPrefs(cfg.Storage.Path, logger)
	defer closeStore()

	application, err := app.New(app.Options{
		Config:    cfg,
		Logger:    logger,
		Prefs:     store,
		PinMode:   opts.mode != "",
		PinLayout: opts.layout != "",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	term, err := ui.NewTerminal(application)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if opts.configPath != "" {
		watcher, err := config.Watch(ctx, opts.configPath, func(next *config.Config, err error) {
			if err != nil {
				application.Logger().Warn("config reload failed, keeping previous settings: %v", err)
				return
			}
			if err := application.ApplyConfig(next); err != nil {
				application.Logger().Warn("%v", err)
				return
			}
			term.Refresh()
		}, config.WithLoadOptions(opts.loadOptions()...))
		if err != nil {
			logger.Warn("config watcher disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	if err := term.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newLogger(w io.Writer, level string) *logging.Logger {
	cfg := logging.DefaultConfig()
	cfg.Output = w
	cfg.Level = logging.ParseLevel(level)
	return logging.New(cfg)
}

// openPrefs opens the preference database. Failures fall back to an
// in-memory store so that the editor still starts.
func openPrefs(path string, logger *logging.Logger) (prefs.Store, func()) {
	if path == "" {
		return prefs.NewMemory(), func() {}
	}
	db, err := prefs.OpenBolt(path)
	if err != nil {
		logger.Warn("preferences will not be saved: %v", err)
		return prefs.NewMemory(), func() {}
	}
	return db, func() {
		if err := db.Close(); err != nil {
			logger.Warn("closing preferences: %v", err)
		}
	}
}

// loadOptions maps command-line flags onto config overrides. Unset flags
// leave lower layers alone.
func (o options) loadOptions() []config.LoadOption {
	return []config.LoadOption{
		config.WithOverride("editor.mode", o.mode),
		config.WithOverride("editor.layout", o.layout),
		config.WithOverride("storage.path", o.statePath),
		config.WithOverride("logging.level", o.logLevel),
		config.WithOverride("logging.file", o.logFile),
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	defaultConfig := os.Getenv(config.EnvConfigPath)
	if defaultConfig == "" {
		defaultConfig = config.DefaultPath()
	}

	flag.StringVar(&opts.configPath, "config", defaultConfig, "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&opts.configPath, "c", defaultConfig, "Path to configuration file (shorthand)")
	flag.StringVar(&opts.mode, "mode", "", "Braille mode ID (default from config, ueb1)")
	flag.StringVar(&opts.layout, "layout", "", "Keyboard layout ID (perkins, sixkey, homekeys, vimstyle)")
	flag.StringVar(&opts.statePath, "state", "", "Path to the preferences database")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "dotwriter - six-dot braille editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: dotwriter [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  dotwriter                       Start with saved mode and layout\n")
		fmt.Fprintf(os.Stderr, "  dotwriter -layout sixkey        Use the DWQ-KOP layout\n")
		fmt.Fprintf(os.Stderr, "  dotwriter -log-file dw.log      Log to a file\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("dotwriter %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	// Validate log level
	switch opts.logLevel {
	case "", "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
		os.Exit(1)
	}

	return opts
}
