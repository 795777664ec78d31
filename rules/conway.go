package rules

const (
	birthNeighbors   = 3
	surviveNeighbors = 2
	maxLiveNeighbors = 8
)

/*
NextState applies Conway's Game of Life rules to a single cell.

A dead cell with exactly 3 live neighbors is born, a live cell with 2 or 3
live neighbors survives, every other cell is dead in the next generation.
*/
func NextState(alive bool, neighbors int) bool {
	if neighbors < 0 || neighbors > maxLiveNeighbors {
		return false
	}
	return neighbors == birthNeighbors || (alive && neighbors == surviveNeighbors)
}
