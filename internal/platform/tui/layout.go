package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/engine"
)

// graphHeight is the number of plot rows of the population graph.
const graphHeight = 5

// Layout draws a frame onto a fresh screen sized to fit it.
// Cells are separated by a one-column and one-row gap and shifted by the
// viewport origin. In Debug mode every cell carries its index digits,
// state and coordinates, and the status panel follows the board.
func Layout(f engine.Frame) *core.Screen {
	s := f.Settings
	panel := debugLines(f.Debug)
	graph := populationGraph(f.Debug)

	width := s.DisplayColumns(f.Mode)
	for _, l := range panel {
		width = core.Max(width, len([]rune(l.text)))
	}
	for _, l := range graph {
		width = core.Max(width, len([]rune(l)))
	}
	// the trailing gap row is where the panel starts
	boardRows := s.DisplayRows() - 1
	scr := core.NewScreen(width, boardRows+len(panel)+len(graph))

	for y, row := range f.Cells {
		for x, alive := range row {
			drawCell(scr, s, f.Mode, x, y, alive)
		}
	}

	for i, l := range panel {
		scr.DrawText(0, boardRows+i, l.text, l.fg, l.bg)
	}
	for i, l := range graph {
		scr.DrawText(0, boardRows+len(panel)+i, l, core.ColorBrightGreen, core.ColorDefault)
	}
	return scr
}

func drawCell(scr *core.Screen, s core.Settings, mode core.PrintMode, x, y int, alive bool) {
	fg, bg := core.CellColors(alive)
	x0 := x*(s.CellColumns(mode)+1) + s.Origin.X
	y0 := y*(s.CellViewHeight+1) + s.Origin.Y

	if mode != core.ModeDebug {
		scr.DrawRect(x0, y0, s.CellViewWidth, s.CellViewHeight, ' ', fg, bg)
		return
	}

	// index digits, each written over the tail of the previous one
	for yo := 0; yo < s.CellViewHeight; yo++ {
		for xo := 0; xo < s.CellViewWidth+core.DebugLabelWidth; xo++ {
			if xo < s.CellViewWidth {
				scr.DrawText(x0+xo, y0+yo, strconv.Itoa(yo*s.CellViewHeight+xo+yo), fg, bg)
			} else {
				scr.Set(x0+xo, y0+yo, ' ', fg, bg)
			}
		}
	}

	state := " false"
	if alive {
		state = " true "
	}
	scr.DrawText(x0+s.CellViewWidth, y0, state, fg, bg)
	scr.DrawText(x0+s.CellViewWidth, y0+1, fmt.Sprintf(" %d:%d", x, y), fg, bg)
}

type panelLine struct {
	text   string
	fg, bg core.Color
}

func debugLines(d *engine.DebugInfo) []panelLine {
	if d == nil {
		return nil
	}
	input := ""
	if d.LatestInput != 0 {
		input = string(d.LatestInput)
	}
	texts := []string{
		fmt.Sprintf("Round %d. ", d.Rounds),
		fmt.Sprintf("Latest Command: cmd - '%s', input - '%s'", d.LatestCommand, input),
		fmt.Sprintf("Cmd count: %d", d.CommandCount),
		fmt.Sprintf("Mode: %s", d.Mode),
		fmt.Sprintf("Is Paused: %t", d.Paused),
		fmt.Sprintf("FPS Count: %d", d.FPSLast),
	}
	lines := make([]panelLine, 0, len(texts)+1)
	for _, t := range texts {
		lines = append(lines, panelLine{text: t, fg: core.ColorRed, bg: core.ColorWhite})
	}
	if d.LatestErr != "" {
		lines = append(lines, panelLine{text: "Error: " + d.LatestErr, fg: core.ColorWhite, bg: core.ColorRed})
	}
	return lines
}

func populationGraph(d *engine.DebugInfo) []string {
	if d == nil || len(d.Populations) < 2 {
		return nil
	}
	return PopulationPlot(d.Populations, graphHeight, "population")
}

// PopulationPlot renders populations as an ASCII line chart.
// It returns no lines for fewer than two points.
func PopulationPlot(populations []int, height int, caption string) []string {
	if len(populations) < 2 {
		return nil
	}
	data := make([]float64, len(populations))
	for i, p := range populations {
		data[i] = float64(p)
	}
	plot := asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Precision(0),
		asciigraph.Caption(caption),
	)
	return strings.Split(plot, "\n")
}
