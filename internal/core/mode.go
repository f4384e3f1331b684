package core

import (
	"fmt"
	"strings"
)

// PrintMode selects how the board is drawn.
type PrintMode int

const (
	ModePretty PrintMode = iota // Solid colored blocks
	ModeDebug                   // Per-cell labels plus a status panel
)

// String returns "Pretty" or "Debug".
func (m PrintMode) String() string {
	switch m {
	case ModePretty:
		return "Pretty"
	case ModeDebug:
		return "Debug"
	default:
		return "Unknown"
	}
}

// Toggle returns the other mode.
func (m PrintMode) Toggle() PrintMode {
	if m == ModeDebug {
		return ModePretty
	}
	return ModeDebug
}

// ParsePrintMode parses "pretty" or "debug" in any letter case.
func ParsePrintMode(s string) (PrintMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pretty":
		return ModePretty, nil
	case "debug":
		return ModeDebug, nil
	}
	return ModePretty, fmt.Errorf("`%s` is not a valid mode", s)
}

// MarshalText implements encoding.TextMarshaler so modes round-trip through config files.
func (m PrintMode) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(m.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *PrintMode) UnmarshalText(text []byte) error {
	parsed, err := ParsePrintMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
