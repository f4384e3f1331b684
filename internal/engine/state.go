package engine

import (
	"time"

	"github.com/vovakirdan/tui-life/internal/core"
)

// PopulationHistorySize is the number of recent populations kept for the debug graph.
const PopulationHistorySize = 60

// RunState is the mutable state of a running simulation.
// Only the controller goroutine touches it.
type RunState struct {
	Paused        bool
	FPSLimited    bool
	Mode          core.PrintMode
	Rounds        uint64 // Accepted simulation steps
	FPSLast       uint64 // Loop iterations per second at the last sample
	FPSCurrent    uint64 // Iterations since the last sample
	CommandCount  uint64 // Key-down events processed
	LatestCommand core.Command
	LatestInput   rune
	LatestErr     string // Empty when no error
	Populations   []int  // Population after each recent step, oldest first
}

// clone returns a copy that shares no storage with s.
func (s RunState) clone() RunState {
	out := s
	out.Populations = append([]int(nil), s.Populations...)
	return out
}

// recordPopulation appends p, keeping at most PopulationHistorySize entries.
func (s *RunState) recordPopulation(p int) {
	s.Populations = append(s.Populations, p)
	if over := len(s.Populations) - PopulationHistorySize; over > 0 {
		s.Populations = append(s.Populations[:0], s.Populations[over:]...)
	}
}

// DebugInfo carries the status panel fields shown in Debug mode.
type DebugInfo struct {
	Rounds        uint64
	LatestCommand core.Command
	LatestInput   rune
	CommandCount  uint64
	Mode          core.PrintMode
	Paused        bool
	FPSLast       uint64
	LatestErr     string
	Populations   []int
}

// Frame is everything a DisplaySink needs to draw one iteration.
type Frame struct {
	Cells    [][]bool // Snapshot of the current generation, [y][x]
	Settings core.Settings
	Mode     core.PrintMode
	Debug    *DebugInfo // Nil unless Mode is Debug
}

// Outcome tells why the loop stopped.
type Outcome int

const (
	OutcomeQuit   Outcome = iota // Operator pressed quit
	OutcomeStable                // A step produced an unchanged generation
)

// String returns a short name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeQuit:
		return "quit"
	case OutcomeStable:
		return "stable"
	default:
		return "unknown"
	}
}

// Result summarizes a finished run.
type Result struct {
	Outcome    Outcome
	State      RunState
	Population int           // Live cells in the final generation
	Elapsed    time.Duration // Last successful clock reading
}
