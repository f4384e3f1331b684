package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/engine"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

func runLife(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr, "")
	cfg, opts, _ := loadSetup(logger)
	settings := cfg.Settings(opts.XLen, opts.YLen)

	// Warn before the board takes over the screen
	if width, height, err := tui.TerminalSize(os.Stdout); err == nil {
		if cols := settings.DisplayColumns(opts.Mode); cols > width {
			logger.Warn("board is wider than the terminal", "columns", cols, "terminal", width)
		}
		if rows := settings.DisplayRows(); rows > height {
			logger.Warn("board is taller than the terminal", "rows", rows, "terminal", height)
		}
	}

	runLogger, closeLog, err := openRunLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	var restore func() error
	if tui.IsTerminal(os.Stdin) {
		restore, err = tui.EnableRawMode(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	input := tui.NewInputSource(os.Stdin, tui.DefaultEventBuffer, runLogger)
	go func() {
		if err := input.Run(); err != nil && !errors.Is(err, tui.ErrReceiverGone) {
			runLogger.Error("input stopped", "error", err)
		}
	}()

	sink := tui.NewTerminalSink(os.Stdout)
	ctrl := engine.New(engine.Config{
		Settings: settings,
		Seed:     opts.Seed,
		Mode:     opts.Mode,
	}, input.Events(), sink, engine.WithLogger(runLogger))

	runLogger.Info("run started", "seed", opts.Seed, "width", opts.XLen, "height", opts.YLen, "mode", opts.Mode)
	result := ctrl.Run()
	input.Stop()

	if err := sink.Restore(); err != nil {
		runLogger.Error("restore terminal", "error", err)
	}
	if restore != nil {
		if err := restore(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
	runLogger.Info("run finished", "outcome", result.Outcome, "rounds", result.State.Rounds)

	saveRun(cfg.Storage.DBPath, logger, opts, result)
	printResult(opts, result)
}

// saveRun records the run summary. History is optional; failures only warn.
func saveRun(dbPath string, logger *log.Logger, opts config.Options, result engine.Result) {
	store := openStore(dbPath, logger)
	if store == nil {
		return
	}
	defer store.Close()

	if _, err := store.SaveRun(recordFor(opts, result)); err != nil {
		logger.Warn("could not save run", "error", err)
	}
}

func recordFor(opts config.Options, result engine.Result) storage.RunRecord {
	return storage.RunRecord{
		Seed:       opts.Seed,
		Width:      opts.XLen,
		Height:     opts.YLen,
		Mode:       result.State.Mode.String(),
		Outcome:    result.Outcome.String(),
		Rounds:     result.State.Rounds,
		Population: result.Population,
		Duration:   result.Elapsed,
	}
}

func printResult(opts config.Options, result engine.Result) {
	switch result.Outcome {
	case engine.OutcomeStable:
		fmt.Printf("Board stabilised after %d rounds.\n", result.State.Rounds)
	default:
		fmt.Printf("Stopped after %d rounds.\n", result.State.Rounds)
	}
	fmt.Printf("Seed %d, %dx%d, %d alive, ran %s.\n",
		opts.Seed, opts.XLen, opts.YLen, result.Population, result.Elapsed.Round(time.Millisecond))
}
