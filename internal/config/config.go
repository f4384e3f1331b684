// Package config provides YAML-based configuration loading for life and the
// parsing of command-line options with default fallback.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-life/internal/core"
)

// Config contains all configuration for a life session.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	View       ViewConfig       `yaml:"view"`
	Defaults   DefaultsConfig   `yaml:"defaults"`
	Storage    StorageConfig    `yaml:"storage"`
	Log        LogConfig        `yaml:"log"`
}

// SimulationConfig defines loop pacing.
type SimulationConfig struct {
	RoundDuration   time.Duration `yaml:"round_duration"`
	FrameSleep      time.Duration `yaml:"frame_sleep"`
	FPSSampleWindow time.Duration `yaml:"fps_sample_window"`
}

// ViewConfig defines how many terminal cells a board cell uses.
type ViewConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// DefaultsConfig holds the values used when a command-line option is
// missing or unparsable.
type DefaultsConfig struct {
	XLen int            `yaml:"x_len"`
	YLen int            `yaml:"y_len"`
	Seed uint64         `yaml:"seed"`
	Mode core.PrintMode `yaml:"mode"`
}

// StorageConfig locates the run history database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"` // A leading ~ expands to the home directory
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Empty discards logs written while the board is drawn
}

// Validate reports the first setting that cannot drive a simulation.
func (c Config) Validate() error {
	var errs []error
	if c.Simulation.RoundDuration <= 0 {
		errs = append(errs, fmt.Errorf("simulation.round_duration must be positive, got %s", c.Simulation.RoundDuration))
	}
	if c.Simulation.FrameSleep < 0 {
		errs = append(errs, fmt.Errorf("simulation.frame_sleep must not be negative, got %s", c.Simulation.FrameSleep))
	}
	if c.Simulation.FPSSampleWindow <= 0 {
		errs = append(errs, fmt.Errorf("simulation.fps_sample_window must be positive, got %s", c.Simulation.FPSSampleWindow))
	}
	if c.View.CellWidth <= 0 || c.View.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("view cell size must be positive, got %dx%d", c.View.CellWidth, c.View.CellHeight))
	}
	if c.Defaults.XLen <= 0 || c.Defaults.YLen <= 0 {
		errs = append(errs, fmt.Errorf("defaults board size must be positive, got %dx%d", c.Defaults.XLen, c.Defaults.YLen))
	}
	return errors.Join(errs...)
}

// Settings builds run settings for a board of the given size.
func (c Config) Settings(width, height int) core.Settings {
	return core.Settings{
		Width:           width,
		Height:          height,
		CellViewWidth:   c.View.CellWidth,
		CellViewHeight:  c.View.CellHeight,
		RoundDuration:   c.Simulation.RoundDuration,
		FrameSleep:      c.Simulation.FrameSleep,
		FPSSampleWindow: c.Simulation.FPSSampleWindow,
	}
}
