package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/engine"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestTerminalSinkClear(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTerminalSink(&buf)

	if err := sink.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if buf.String() != clearScreen+hideCursor {
		t.Errorf("Clear() wrote %q", buf.String())
	}
}

func TestTerminalSinkClearRows(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTerminalSink(&buf)

	if err := sink.ClearRows(2); err != nil {
		t.Fatalf("ClearRows() error = %v", err)
	}
	expected := resetColors + "\033[1;1H" + clearLine + "\033[2;1H" + clearLine
	if buf.String() != expected {
		t.Errorf("ClearRows(2) wrote %q, expected %q", buf.String(), expected)
	}
}

func TestTerminalSinkClearRowsCoversLastFrame(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTerminalSink(&buf)

	f := engine.Frame{
		Cells:    [][]bool{{true}, {false}},
		Settings: core.DefaultSettings(1, 2),
		Mode:     core.ModePretty,
	}
	if err := sink.Render(f); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	rows := f.Settings.DisplayRows() - 1

	buf.Reset()
	sink.ClearRows(1)
	if got := strings.Count(buf.String(), clearLine); got != rows {
		t.Errorf("cleared %d rows, expected %d", got, rows)
	}
}

func TestTerminalSinkRender(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTerminalSink(&buf)

	f := engine.Frame{
		Cells:    [][]bool{{true, false}, {false, true}},
		Settings: core.DefaultSettings(2, 2),
		Mode:     core.ModePretty,
	}
	if err := sink.Render(f); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, cursorHome) {
		t.Errorf("Render() should start at home, got %q", out[:min(len(out), 8)])
	}
	if !strings.HasSuffix(out, resetColors) {
		t.Error("Render() should reset colors at the end")
	}
	if got := strings.Count(out, "\r\n"); got != f.Settings.DisplayRows()-2 {
		t.Errorf("Render() wrote %d line breaks, expected %d", got, f.Settings.DisplayRows()-2)
	}
}

func TestTerminalSinkWriteErrors(t *testing.T) {
	sink := NewTerminalSink(failingWriter{})
	f := engine.Frame{Cells: [][]bool{{true}}, Settings: core.DefaultSettings(1, 1)}

	if err := sink.Render(f); err == nil {
		t.Error("Render() should fail on a broken writer")
	}
	if err := sink.Clear(); err == nil {
		t.Error("Clear() should fail on a broken writer")
	}
	if err := sink.ClearRows(3); err == nil {
		t.Error("ClearRows() should fail on a broken writer")
	}
	if err := sink.Restore(); err == nil {
		t.Error("Restore() should fail on a broken writer")
	}
}

func TestTerminalSinkRestore(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTerminalSink(&buf).Restore(); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if !strings.Contains(buf.String(), showCursor) || !strings.HasPrefix(buf.String(), resetColors) {
		t.Errorf("Restore() wrote %q", buf.String())
	}
}
