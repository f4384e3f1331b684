package tui

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TerminalSize returns the width and height of the terminal behind f.
func TerminalSize(f *os.File) (width, height int, err error) {
	width, height, err = term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("tui: terminal size: %w", err)
	}
	return width, height, nil
}

// EnableRawMode puts the terminal behind f into raw mode and returns a
// function restoring the previous state.
func EnableRawMode(f *os.File) (restore func() error, err error) {
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("tui: raw mode: %w", err)
	}
	return func() error {
		return term.Restore(fd, state)
	}, nil
}
