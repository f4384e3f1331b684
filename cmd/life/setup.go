package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// newLogger creates a logger writing to w. An unknown level keeps info.
func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "life",
	})
	logger.SetLevel(levelOrInfo(level))
	return logger
}

// loadSetup loads the configuration and resolves the board flags against
// its defaults. Every problem is logged as a warning and replaced by a default;
// the warnings are returned so callers can tell a default from a given value.
func loadSetup(logger *log.Logger) (config.Config, config.Options, []*config.ParseError) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("could not load config, using defaults", "path", flagConfig, "error", err)
	}
	logger.SetLevel(levelOrInfo(cfg.Log.Level))

	opts, warnings := config.ParseOptions(config.RawOptions{
		XLen: flagXLen,
		YLen: flagYLen,
		Seed: flagSeed,
		Mode: flagMode,
	}, cfg.Defaults)
	for _, w := range warnings {
		logger.Warn("invalid option", "option", w.Option, "value", w.Value, "using", w.Default, "error", w.Err)
	}

	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	return cfg, opts, warnings
}

// seedFilter returns the seed to filter history by. A missing or unparsable
// --seed means no filter.
func seedFilter(raw string, opts config.Options, warnings []*config.ParseError) (uint64, bool) {
	if strings.TrimSpace(raw) == "" {
		return 0, false
	}
	for _, w := range warnings {
		if w.Option == "seed" {
			return 0, false
		}
	}
	return opts.Seed, true
}

func levelOrInfo(level string) log.Level {
	if lvl, err := log.ParseLevel(level); err == nil {
		return lvl
	}
	return log.InfoLevel
}

// openRunLogger returns the logger used while the board owns the terminal.
// Without a log file output is discarded.
func openRunLogger(cfg config.LogConfig) (*log.Logger, func() error, error) {
	if cfg.File == "" {
		return newLogger(io.Discard, cfg.Level), func() error { return nil }, nil
	}

	path := config.ExpandHome(cfg.File)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return newLogger(f, cfg.Level), f.Close, nil
}

// openStore opens the run history, logging instead of failing.
func openStore(path string, logger *log.Logger) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open run history", "path", path, "error", err)
		return nil
	}
	return store
}
