package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/engine"
)

func TestLevelOrInfo(t *testing.T) {
	tests := []struct {
		level    string
		expected log.Level
	}{
		{"debug", log.DebugLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"", log.InfoLevel},
		{"loud", log.InfoLevel},
	}

	for _, tc := range tests {
		if got := levelOrInfo(tc.level); got != tc.expected {
			t.Errorf("levelOrInfo(%q) = %v, expected %v", tc.level, got, tc.expected)
		}
	}
}

func TestOpenRunLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "life.log")

	logger, closeLog, err := openRunLogger(config.LogConfig{Level: "debug", File: path})
	if err != nil {
		t.Fatalf("openRunLogger() error = %v", err)
	}
	logger.Debug("hello", "seed", 55)
	if err := closeLog(); err != nil {
		t.Fatalf("close error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "hello") || !strings.Contains(string(data), "seed=55") {
		t.Errorf("log file = %q, expected the debug line", data)
	}
}

func TestOpenRunLoggerDiscards(t *testing.T) {
	logger, closeLog, err := openRunLogger(config.LogConfig{Level: "info"})
	if err != nil {
		t.Fatalf("openRunLogger() error = %v", err)
	}
	logger.Info("dropped")
	if err := closeLog(); err != nil {
		t.Errorf("close error = %v", err)
	}
}

func TestRecordFor(t *testing.T) {
	opts := config.Options{XLen: 5, YLen: 5, Seed: 55, Mode: core.ModePretty}
	result := engine.Result{
		Outcome:    engine.OutcomeStable,
		State:      engine.RunState{Rounds: 3, Mode: core.ModeDebug},
		Population: 0,
		Elapsed:    3500 * time.Millisecond,
	}

	r := recordFor(opts, result)
	if r.Seed != 55 || r.Width != 5 || r.Height != 5 {
		t.Errorf("board = seed %d %dx%d, expected seed 55 5x5", r.Seed, r.Width, r.Height)
	}
	if r.Outcome != "stable" || r.Rounds != 3 {
		t.Errorf("outcome = %s after %d rounds, expected stable after 3", r.Outcome, r.Rounds)
	}
	if r.Mode != "Debug" {
		t.Errorf("Mode = %q, expected the mode at exit", r.Mode)
	}
	if r.Duration != 3500*time.Millisecond {
		t.Errorf("Duration = %v, expected 3.5s", r.Duration)
	}
}

func TestSeedFilter(t *testing.T) {
	defaults := config.Default().Defaults

	tests := []struct {
		raw      string
		expected uint64
		ok       bool
	}{
		{"", 0, false},
		{"  ", 0, false},
		{"55", 55, true},
		{"abc", 0, false},
		{"-1", 0, false},
	}

	for _, tc := range tests {
		opts, warnings := config.ParseOptions(config.RawOptions{Seed: tc.raw}, defaults)
		seed, ok := seedFilter(tc.raw, opts, warnings)
		if seed != tc.expected || ok != tc.ok {
			t.Errorf("seedFilter(%q) = (%d, %v), expected (%d, %v)", tc.raw, seed, ok, tc.expected, tc.ok)
		}
	}
}
