// Package tui is the terminal side of life: raw keyboard input, the ANSI
// board renderer, text previews and the Bubble Tea history browser.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/tui-life/internal/engine"
)

const (
	clearScreen = "\033[2J\033[H"
	cursorHome  = "\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
	resetColors = "\033[0m"
	clearLine   = "\033[2K"
)

// TerminalSink draws frames to a raw-mode terminal with ANSI sequences.
type TerminalSink struct {
	w        io.Writer
	lastRows int // Rows drawn by the previous Render
}

// NewTerminalSink creates a sink writing to w.
func NewTerminalSink(w io.Writer) *TerminalSink {
	return &TerminalSink{w: w}
}

var _ engine.DisplaySink = (*TerminalSink)(nil)

// Render draws the frame from the top-left corner.
// Lines end with \r\n because raw mode disables output post-processing.
func (t *TerminalSink) Render(f engine.Frame) error {
	lines := RenderRows(Layout(f))
	t.lastRows = len(lines)

	var sb strings.Builder
	sb.WriteString(cursorHome)
	sb.WriteString(strings.Join(lines, "\r\n"))
	sb.WriteString(resetColors)
	if _, err := io.WriteString(t.w, sb.String()); err != nil {
		return fmt.Errorf("tui: render: %w", err)
	}
	return nil
}

// Clear wipes the screen and hides the cursor.
func (t *TerminalSink) Clear() error {
	if _, err := io.WriteString(t.w, clearScreen+hideCursor); err != nil {
		return fmt.Errorf("tui: clear: %w", err)
	}
	return nil
}

// ClearRows wipes the first n rows, or every row of the last frame if that was taller.
func (t *TerminalSink) ClearRows(n int) error {
	n = max(n, t.lastRows)
	var sb strings.Builder
	sb.WriteString(resetColors)
	for row := 1; row <= n; row++ {
		fmt.Fprintf(&sb, "\033[%d;1H%s", row, clearLine)
	}
	if _, err := io.WriteString(t.w, sb.String()); err != nil {
		return fmt.Errorf("tui: clear rows: %w", err)
	}
	return nil
}

// Restore shows the cursor and resets colors. Call it once the run is over.
func (t *TerminalSink) Restore() error {
	if _, err := io.WriteString(t.w, resetColors+showCursor+"\r\n"); err != nil {
		return fmt.Errorf("tui: restore: %w", err)
	}
	return nil
}
