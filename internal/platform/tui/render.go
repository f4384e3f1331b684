package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/core"
)

// palette maps core.Color to ANSI colors.
var palette = map[core.Color]lipgloss.Color{
	core.ColorBlack:         lipgloss.Color("0"),
	core.ColorRed:           lipgloss.Color("1"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.Color("3"),
	core.ColorBlue:          lipgloss.Color("4"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("6"),
	core.ColorWhite:         lipgloss.Color("7"),
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.Color("11"),
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorGray:          lipgloss.Color("245"),
}

type colorPair struct {
	fg, bg core.Color
}

// styles caches one lipgloss style per foreground/background pair.
var styles = map[colorPair]lipgloss.Style{}

func styleFor(fg, bg core.Color) lipgloss.Style {
	key := colorPair{fg, bg}
	if st, ok := styles[key]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if c, ok := palette[fg]; ok {
		st = st.Foreground(c)
	}
	if c, ok := palette[bg]; ok {
		st = st.Background(c)
	}
	styles[key] = st
	return st
}

// RenderRows converts a Screen buffer to styled lines.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderRows(s *core.Screen) []string {
	lines := make([]string, s.Height())
	for y := 0; y < s.Height(); y++ {
		row := s.Row(y)
		var sb strings.Builder
		sb.Grow(len(row) * 2)

		x := 0
		for x < len(row) {
			fg, bg := row[x].FG, row[x].BG

			// Collect consecutive cells with the same colors
			var run strings.Builder
			for x < len(row) && row[x].FG == fg && row[x].BG == bg {
				run.WriteRune(row[x].Rune)
				x++
			}

			if fg == core.ColorDefault && bg == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(fg, bg).Render(run.String()))
		}
		lines[y] = sb.String()
	}
	return lines
}

// RenderScreen converts a Screen buffer to a styled string, rows joined with newlines.
func RenderScreen(s *core.Screen) string {
	return strings.Join(RenderRows(s), "\n")
}
