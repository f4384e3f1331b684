package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-life/internal/core"
)

//go:embed defaults/life.yaml
var defaultLifeYAML []byte

// Default returns the hardcoded configuration.
func Default() Config {
	return Config{
		Simulation: SimulationConfig{
			RoundDuration:   time.Second,
			FrameSleep:      16 * time.Millisecond,
			FPSSampleWindow: 100 * time.Millisecond,
		},
		View: ViewConfig{
			CellWidth:  3,
			CellHeight: 2,
		},
		Defaults: DefaultsConfig{
			XLen: 10,
			YLen: 7,
			Seed: 419,
			Mode: core.ModePretty,
		},
		Storage: StorageConfig{
			DBPath: "~/.life/runs.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
