package model

import "github.com/pkg/errors"

var (
	// ErrOutOfRange is returned when a cell coordinate lies outside the grid
	ErrOutOfRange = errors.New("cell coordinate out of range")

	// ErrInvalidDimensions is returned when a grid or viewport has a non-positive size
	ErrInvalidDimensions = errors.New("invalid dimensions")

	ErrUnknownInitMode = errors.New("unknown init mode")
)
