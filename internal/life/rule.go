// Package life implements the Conway's Game of Life board: the B3/S23
// transition rule and a toroidal grid with a two-generation buffer.
// It has no terminal or timing dependencies.
package life

import "fmt"

// MaxNeighbors is the largest possible live-neighbor count.
const MaxNeighbors = 8

// Next returns the next state of a cell given its current state and
// the number of live cells among its eight neighbors.
// Panics if liveNeighbors exceeds MaxNeighbors.
func Next(alive bool, liveNeighbors uint8) bool {
	if liveNeighbors > MaxNeighbors {
		panic(fmt.Sprintf("life: neighbor count %d out of range", liveNeighbors))
	}

	if alive {
		return liveNeighbors == 2 || liveNeighbors == 3
	}
	return liveNeighbors == 3
}
