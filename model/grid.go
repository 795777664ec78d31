package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
)

// Grid is a fixed-size, bounded board of cells stored row-major
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] grid must be at least 1x1, got %dx%d", width, height)
	}
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// Contains reports whether (row, col) addresses a cell of the grid
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Alive returns the state of a cell, cells outside the grid are dead
func (g *Grid) Alive(row, col int) bool {
	if !g.Contains(row, col) {
		return false
	}
	return g.cells[row][col]
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(row, col int, alive bool) error {
	if !g.Contains(row, col) {
		return g.outOfRange("Set", row, col)
	}
	g.cells[row][col] = alive
	return nil
}

// Toggle flips a single cell
func (g *Grid) Toggle(row, col int) error {
	if !g.Contains(row, col) {
		return g.outOfRange("Toggle", row, col)
	}
	g.cells[row][col] = !g.cells[row][col]
	return nil
}

func (g *Grid) outOfRange(op string, row, col int) error {
	return errors.Wrapf(ErrOutOfRange, "[%s] row %d, col %d outside %dx%d grid", op, row, col, g.width, g.height)
}

// CountLiveNeighbors counts the living cells among the up to 8 cells
// surrounding (row, col). There is no wraparound: edge cells have fewer
// neighbors.
func (g *Grid) CountLiveNeighbors(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.height-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.width-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r][c] {
				count++
			}
		}
	}

	return count
}

// Clear kills all cells
func (g *Grid) Clear() {
	for row := range g.height {
		for col := range g.width {
			g.cells[row][col] = false
		}
	}
}

// Randomize sets every cell alive or dead with equal probability
func (g *Grid) Randomize(rng *rand.Rand) {
	for row := range g.height {
		for col := range g.width {
			g.cells[row][col] = rng.Intn(2) == 1
		}
	}
}

// CopyFrom overwrites the cells with those of a grid of the same size
func (g *Grid) CopyFrom(other *Grid) error {
	if other.width != g.width || other.height != g.height {
		return errors.Wrapf(ErrInvalidDimensions, "[CopyFrom] cannot copy %dx%d grid into %dx%d grid",
			other.width, other.height, g.width, g.height)
	}
	for row := range g.height {
		copy(g.cells[row], other.cells[row])
	}
	return nil
}

// Cells returns a copy of the cell states, indexed [row][col]
func (g *Grid) Cells() [][]bool {
	out := make([][]bool, g.height)
	for row := range g.height {
		out[row] = make([]bool, g.width)
		copy(out[row], g.cells[row])
	}
	return out
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for row := range g.height {
		for col := range g.width {
			if g.cells[row][col] {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 digest of the current cell states
func (g *Grid) Hash() string {
	h := md5.New()
	row := make([]byte, g.width)
	for r := range g.height {
		for c := range g.width {
			row[c] = 0
			if g.cells[r][c] {
				row[c] = 1
			}
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
