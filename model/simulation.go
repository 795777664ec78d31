package model

import (
	"math/rand"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// InitMode selects how a new simulation fills its grid
type InitMode int

const (
	// InitEmpty starts with every cell dead, ready for manual editing
	InitEmpty InitMode = iota
	// InitRandom makes every cell independently alive with probability 0.5
	InitRandom
	// InitPatterns places a few well-known still lifes, oscillators and gliders
	InitPatterns
)

func (m InitMode) String() string {
	switch m {
	case InitEmpty:
		return "empty"
	case InitRandom:
		return "random"
	case InitPatterns:
		return "patterns"
	}
	return "unknown"
}

// ParseInitMode converts a configuration value into an InitMode
func ParseInitMode(s string) (InitMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "empty", "":
		return InitEmpty, nil
	case "random":
		return InitRandom, nil
	case "patterns":
		return InitPatterns, nil
	}
	return InitEmpty, errors.Wrapf(ErrUnknownInitMode, "[ParseInitMode] %q", s)
}

// Simulation owns a grid, its generation counter and the edit/run state.
//
// While not running the grid may be edited cell by cell; while running the
// driver calls Advance once per simulation tick and edits are ignored.
type Simulation struct {
	grid       *Grid
	next       *Grid
	generation uint64
	running    bool
}

// NewSimulation creates a simulation in editing mode at generation 0
func NewSimulation(width, height int, mode InitMode, seed int64) (*Simulation, error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[NewSimulation] failed to create grid")
	}
	next, err := NewGrid(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[NewSimulation] failed to create buffer")
	}

	switch mode {
	case InitEmpty:
	case InitRandom:
		grid.Randomize(rand.New(rand.NewSource(seed)))
	case InitPatterns:
		seedPatterns(grid)
	default:
		return nil, errors.Wrapf(ErrUnknownInitMode, "[NewSimulation] mode %d", int(mode))
	}

	return &Simulation{grid: grid, next: next}, nil
}

// Advance computes the next generation from a snapshot of the current one,
// swaps it into place and increments the generation counter.
func (s *Simulation) Advance() {
	for row := range s.grid.height {
		for col := range s.grid.width {
			s.next.cells[row][col] = rules.NextState(s.grid.cells[row][col], s.grid.CountLiveNeighbors(row, col))
		}
	}
	s.grid, s.next = s.next, s.grid
	s.generation++
}

// CountLiveNeighbors counts the live neighbors of a cell in the current generation
func (s *Simulation) CountLiveNeighbors(row, col int) int {
	return s.grid.CountLiveNeighbors(row, col)
}

// ToggleCell flips a cell while editing. It is a no-op while running.
func (s *Simulation) ToggleCell(row, col int) error {
	if !s.grid.Contains(row, col) {
		return s.grid.outOfRange("ToggleCell", row, col)
	}
	if s.running {
		return nil
	}
	return s.grid.Toggle(row, col)
}

// SetCell writes a cell while editing. It is a no-op while running.
func (s *Simulation) SetCell(row, col int, alive bool) error {
	if !s.grid.Contains(row, col) {
		return s.grid.outOfRange("SetCell", row, col)
	}
	if s.running {
		return nil
	}
	return s.grid.Set(row, col, alive)
}

// ToggleRunning switches between editing and running
func (s *Simulation) ToggleRunning() {
	s.running = !s.running
}

// SetRunning forces the run state, used by variants that start running
func (s *Simulation) SetRunning(running bool) {
	s.running = running
}

func (s *Simulation) Running() bool {
	return s.running
}

func (s *Simulation) Generation() uint64 {
	return s.generation
}

func (s *Simulation) Width() int {
	return s.grid.width
}

func (s *Simulation) Height() int {
	return s.grid.height
}

// Alive returns the state of a cell in the current generation
func (s *Simulation) Alive(row, col int) bool {
	return s.grid.Alive(row, col)
}

// Cells returns a copy of the current generation
func (s *Simulation) Cells() [][]bool {
	return s.grid.Cells()
}

// LiveCells returns the number of living cells in the current generation
func (s *Simulation) LiveCells() int {
	return s.grid.CountLivingCells()
}

// Hash returns a digest of the current generation
func (s *Simulation) Hash() string {
	return s.grid.Hash()
}
