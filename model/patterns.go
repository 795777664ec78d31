package model

type cell struct {
	row, col int
}

var (
	// glider heading towards the bottom right
	gliderCells = []cell{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}

	// horizontal blinker, period 2
	blinkerCells = []cell{{0, 0}, {0, 1}, {0, 2}}

	blockCells = []cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
)

// PlaceGlider adds a glider with its bounding box starting at (row, col)
func PlaceGlider(g *Grid, row, col int) error {
	return place(g, row, col, gliderCells)
}

// PlaceBlinker adds a horizontal blinker starting at (row, col)
func PlaceBlinker(g *Grid, row, col int) error {
	return place(g, row, col, blinkerCells)
}

// PlaceBlock adds a 2x2 block still life with its top left cell at (row, col)
func PlaceBlock(g *Grid, row, col int) error {
	return place(g, row, col, blockCells)
}

// place checks every target cell before writing so a pattern that does not
// fit leaves the grid untouched
func place(g *Grid, row, col int, pattern []cell) error {
	for _, c := range pattern {
		if !g.Contains(row+c.row, col+c.col) {
			return g.outOfRange("place", row+c.row, col+c.col)
		}
	}
	for _, c := range pattern {
		g.cells[row+c.row][col+c.col] = true
	}
	return nil
}

// seedPatterns fills an empty grid with a few patterns sized to fit it.
// Grids too small for a pattern simply skip it.
func seedPatterns(g *Grid) {
	_ = PlaceGlider(g, 1, 1)
	if g.width >= 10 && g.height >= 10 {
		_ = PlaceBlinker(g, g.height/2, g.width/4)
		_ = PlaceBlock(g, g.height-4, g.width-4)
	}
	if g.width >= 20 && g.height >= 15 {
		_ = PlaceGlider(g, 1, g.width-8)
		_ = PlaceBlinker(g, 3*g.height/4, 3*g.width/4-1)
	}
}
