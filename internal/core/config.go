package core

import "time"

// Settings holds the run parameters the controller and display share.
// Width and Height mirror the grid dimensions for viewport math.
type Settings struct {
	Width          int           // Board width in cells
	Height         int           // Board height in cells
	CellViewWidth  int           // Terminal columns per cell
	CellViewHeight int           // Terminal rows per cell
	RoundDuration  time.Duration // Minimum wall time between simulation steps
	Origin         Origin        // Viewport offset, mutated only by move commands

	FrameSleep      time.Duration // Per-iteration sleep while the FPS cap is on
	FPSSampleWindow time.Duration // Interval between FPS samples
}

// DefaultSettings returns Settings with the stock cell view and pacing.
func DefaultSettings(width, height int) Settings {
	return Settings{
		Width:           width,
		Height:          height,
		CellViewWidth:   3,
		CellViewHeight:  2,
		RoundDuration:   time.Second,
		FrameSleep:      16 * time.Millisecond,
		FPSSampleWindow: 100 * time.Millisecond,
	}
}

// DisplayRows returns the number of terminal rows the board occupies,
// counting the one-row gap under every cell row and the current vertical offset.
// The debug panel starts at this row.
func (s Settings) DisplayRows() int {
	return s.Height*s.CellViewHeight + 1 + s.Height + s.Origin.Y
}

// CellColumns returns how many terminal columns a cell uses in the given mode,
// excluding the one-column gap.
func (s Settings) CellColumns(mode PrintMode) int {
	if mode == ModeDebug {
		return s.CellViewWidth + DebugLabelWidth
	}
	return s.CellViewWidth
}

// DisplayColumns returns the number of terminal columns the board occupies,
// counting the one-column gap after every cell and the horizontal offset.
func (s Settings) DisplayColumns(mode PrintMode) int {
	return s.Width*(s.CellColumns(mode)+1) + s.Origin.X
}

// DebugLabelWidth is the extra width each cell gets in Debug mode for its labels.
const DebugLabelWidth = 6

// DebugPanelRows is the number of status lines drawn under the board in Debug mode.
const DebugPanelRows = 6
