package core

// Color represents a foreground or background color for a screen cell.
// The platform layer maps these to terminal colors.
type Color uint8

// Predefined colors.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorGray
)

// CellColors returns the foreground and background used for a board cell.
// Alive cells are black on bright green, dead cells white on red.
func CellColors(alive bool) (fg, bg Color) {
	if alive {
		return ColorBlack, ColorBrightGreen
	}
	return ColorWhite, ColorRed
}
