package life

import (
	"fmt"

	"github.com/vovakirdan/tui-life/internal/rng"
)

// Grid is a toroidal Game of Life board.
// It keeps the current generation and the one before it so callers can
// detect when the board stops changing. Both generations are height rows
// of width cells, and the dimensions never change after construction.
type Grid struct {
	width    int
	height   int
	current  [][]bool
	previous [][]bool
}

// NewGrid creates a board filled from the seeded generator, one draw per cell
// in row-major order. The previous generation starts as a copy of the fill.
// Panics if width or height is not positive.
func NewGrid(width, height int, seed uint64) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("life: grid dimensions must be positive, got %dx%d", width, height))
	}

	r := rng.New(seed)
	cells := newMatrix(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cells[y][x] = r.Bool()
		}
	}

	return &Grid{
		width:    width,
		height:   height,
		current:  cells,
		previous: cloneMatrix(cells),
	}
}

// FromCells creates a board from a literal matrix indexed [y][x].
// The input is copied. Panics on an empty or ragged matrix.
func FromCells(cells [][]bool) *Grid {
	if len(cells) == 0 || len(cells[0]) == 0 {
		panic("life: grid must have at least one cell")
	}
	width := len(cells[0])
	for y, row := range cells {
		if len(row) != width {
			panic(fmt.Sprintf("life: row %d has %d cells, expected %d", y, len(row), width))
		}
	}

	current := cloneMatrix(cells)
	return &Grid{
		width:    width,
		height:   len(cells),
		current:  current,
		previous: cloneMatrix(current),
	}
}

// Width returns the number of cells in a row.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Alive reports whether the cell at (x, y) is alive in the current generation.
// Coordinates are not wrapped; out-of-range coordinates report false.
func (g *Grid) Alive(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.current[y][x]
}

// CountLiveNeighbors counts live cells around (x, y) in the current
// generation. Edges wrap: one step left of column 0 is the last column,
// one step right of the last column is column 0, and likewise for rows.
func (g *Grid) CountLiveNeighbors(x, y int) uint8 {
	var count uint8
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := wrap(x+dx, g.width)
			ny := wrap(y+dy, g.height)
			if g.current[ny][nx] {
				count++
			}
		}
	}
	return count
}

// Step advances the board by one generation.
// Every cell is computed from the same pre-step snapshot.
// Panics if the new generation does not match the declared dimensions.
func (g *Grid) Step() {
	next := make([][]bool, 0, g.height)
	for y := 0; y < g.height; y++ {
		row := make([]bool, g.width)
		for x := 0; x < g.width; x++ {
			row[x] = Next(g.current[y][x], g.CountLiveNeighbors(x, y))
		}
		if len(row) != g.width {
			panic(fmt.Sprintf("life: row %d has %d cells after step, expected %d", y, len(row), g.width))
		}
		next = append(next, row)
	}
	if len(next) != g.height {
		panic(fmt.Sprintf("life: %d rows after step, expected %d", len(next), g.height))
	}

	g.previous = g.current
	g.current = next
}

// IsStable reports whether the current generation equals the previous one.
func (g *Grid) IsStable() bool {
	for y := range g.current {
		for x := range g.current[y] {
			if g.current[y][x] != g.previous[y][x] {
				return false
			}
		}
	}
	return true
}

// Population returns the number of live cells in the current generation.
func (g *Grid) Population() int {
	n := 0
	for _, row := range g.current {
		for _, alive := range row {
			if alive {
				n++
			}
		}
	}
	return n
}

// Snapshot returns a copy of the current generation indexed [y][x].
func (g *Grid) Snapshot() [][]bool {
	return cloneMatrix(g.current)
}

// Previous returns a copy of the previous generation indexed [y][x].
func (g *Grid) Previous() [][]bool {
	return cloneMatrix(g.previous)
}

// wrap maps a coordinate that is at most one step outside [0, size) back
// onto the board.
func wrap(v, size int) int {
	if v < 0 {
		return size - 1
	}
	if v >= size {
		return 0
	}
	return v
}

func newMatrix(width, height int) [][]bool {
	m := make([][]bool, height)
	for y := range m {
		m[y] = make([]bool, width)
	}
	return m
}

func cloneMatrix(src [][]bool) [][]bool {
	dst := make([][]bool, len(src))
	for y, row := range src {
		dst[y] = make([]bool, len(row))
		copy(dst[y], row)
	}
	return dst
}
