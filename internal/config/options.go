package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-life/internal/core"
)

// ErrNotPositive is the cause recorded for board dimensions below 1.
var ErrNotPositive = errors.New("must be greater than zero")

// ParseError describes a command-line value that could not be used.
// The caller substitutes Default and warns.
type ParseError struct {
	Option  string // Flag name without dashes
	Value   string // Raw value as given
	Default string // Value used instead
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid value %q for --%s (using %s): %v", e.Value, e.Option, e.Default, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RawOptions are the command-line values as typed. Empty means not given.
type RawOptions struct {
	XLen string
	YLen string
	Seed string
	Mode string
}

// Options are the resolved board options.
type Options struct {
	XLen int
	YLen int
	Seed uint64
	Mode core.PrintMode
}

// ParseOptions resolves raw values against defaults. Every value that cannot
// be parsed falls back to its default and yields a ParseError; parsing never fails.
func ParseOptions(raw RawOptions, defaults DefaultsConfig) (Options, []*ParseError) {
	opts := Options{
		XLen: defaults.XLen,
		YLen: defaults.YLen,
		Seed: defaults.Seed,
		Mode: defaults.Mode,
	}
	var warnings []*ParseError

	if v, perr := parseDimension("x-len", raw.XLen, defaults.XLen); perr != nil {
		warnings = append(warnings, perr)
	} else {
		opts.XLen = v
	}
	if v, perr := parseDimension("y-len", raw.YLen, defaults.YLen); perr != nil {
		warnings = append(warnings, perr)
	} else {
		opts.YLen = v
	}

	if s := strings.TrimSpace(raw.Seed); s != "" {
		if seed, err := strconv.ParseUint(s, 10, 64); err != nil {
			warnings = append(warnings, &ParseError{
				Option:  "seed",
				Value:   raw.Seed,
				Default: strconv.FormatUint(defaults.Seed, 10),
				Err:     err,
			})
		} else {
			opts.Seed = seed
		}
	}

	if s := strings.TrimSpace(raw.Mode); s != "" {
		if mode, err := core.ParsePrintMode(s); err != nil {
			warnings = append(warnings, &ParseError{
				Option:  "mode",
				Value:   raw.Mode,
				Default: strings.ToLower(defaults.Mode.String()),
				Err:     err,
			})
		} else {
			opts.Mode = mode
		}
	}

	return opts, warnings
}

func parseDimension(option, raw string, def int) (int, *ParseError) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err == nil && n <= 0 {
		err = ErrNotPositive
	}
	if err != nil {
		return def, &ParseError{Option: option, Value: raw, Default: strconv.Itoa(def), Err: err}
	}
	return n, nil
}
