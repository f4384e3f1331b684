package tui

import (
	"strings"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/engine"
	"github.com/vovakirdan/tui-life/internal/life"
)

// Preview is the outcome of advancing a seeded grid without a terminal loop.
type Preview struct {
	Grid        *life.Grid
	Rounds      uint64
	Stable      bool  // A step left the grid unchanged
	Populations []int // Population after every step
}

// RunPreview steps g up to generations times, stopping early once a step
// leaves the grid unchanged.
func RunPreview(g *life.Grid, generations int) Preview {
	p := Preview{Grid: g}
	for i := 0; i < generations; i++ {
		g.Step()
		p.Rounds++
		p.Populations = append(p.Populations, g.Population())
		if g.IsStable() {
			p.Stable = true
			break
		}
	}
	return p
}

// Frame builds a display frame for the preview. Debug mode carries the round
// count and the most recent populations.
func (p Preview) Frame(s core.Settings, mode core.PrintMode) engine.Frame {
	f := engine.Frame{
		Cells:    p.Grid.Snapshot(),
		Settings: s,
		Mode:     mode,
	}
	if mode == core.ModeDebug {
		pops := p.Populations
		if len(pops) > engine.PopulationHistorySize {
			pops = pops[len(pops)-engine.PopulationHistorySize:]
		}
		f.Debug = &engine.DebugInfo{
			Rounds:        p.Rounds,
			LatestCommand: core.CommandNone,
			Mode:          mode,
			Populations:   append([]int(nil), pops...),
		}
	}
	return f
}

// PlainBoard renders cells one character each, '#' alive and '.' dead.
func PlainBoard(cells [][]bool) string {
	var sb strings.Builder
	for y, row := range cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, alive := range row {
			if alive {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
