package model

import "github.com/pkg/errors"

// Viewport maps between screen positions and grid coordinates. Every cell
// occupies the same cellWidth x cellHeight rectangle.
type Viewport struct {
	cellWidth  int
	cellHeight int
	gridWidth  int
	gridHeight int
}

// NewViewport divides a screen evenly between the cells of a grid
func NewViewport(screenWidth, screenHeight, gridWidth, gridHeight int) (Viewport, error) {
	if gridWidth <= 0 || gridHeight <= 0 {
		return Viewport{}, errors.Wrapf(ErrInvalidDimensions, "[NewViewport] grid %dx%d", gridWidth, gridHeight)
	}
	vp := Viewport{
		cellWidth:  screenWidth / gridWidth,
		cellHeight: screenHeight / gridHeight,
		gridWidth:  gridWidth,
		gridHeight: gridHeight,
	}
	if vp.cellWidth < 1 || vp.cellHeight < 1 {
		return Viewport{}, errors.Wrapf(ErrInvalidDimensions,
			"[NewViewport] screen %dx%d too small for grid %dx%d", screenWidth, screenHeight, gridWidth, gridHeight)
	}
	return vp, nil
}

func (v Viewport) CellWidth() int {
	return v.cellWidth
}

func (v Viewport) CellHeight() int {
	return v.cellHeight
}

// ScreenSize returns the area actually covered by cells
func (v Viewport) ScreenSize() (width, height int) {
	return v.cellWidth * v.gridWidth, v.cellHeight * v.gridHeight
}

// CellOrigin returns the top left screen position of a cell
func (v Viewport) CellOrigin(row, col int) (x, y int) {
	return col * v.cellWidth, row * v.cellHeight
}

// CellAt returns the grid coordinate under a screen position. Positions left
// of or above the grid map to -1; positions past the last cell map past the
// last index. Either way the simulator rejects them as out of range.
func (v Viewport) CellAt(x, y int) (row, col int) {
	row, col = -1, -1
	if y >= 0 {
		row = y / v.cellHeight
	}
	if x >= 0 {
		col = x / v.cellWidth
	}
	return row, col
}
