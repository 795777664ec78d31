package model

import (
	"fmt"
	"sort"
	"testing"

	"github.com/pkg/errors"
)

func emptySim(t testing.TB, width, height int) *Simulation {
	t.Helper()
	sim, err := NewSimulation(width, height, InitEmpty, 0)
	if err != nil {
		t.Fatalf("NewSimulation(%d, %d): %v", width, height, err)
	}
	return sim
}

func setAlive(t testing.TB, sim *Simulation, cells ...cell) {
	t.Helper()
	for _, c := range cells {
		if err := sim.SetCell(c.row, c.col, true); err != nil {
			t.Fatalf("SetCell(%d, %d): %v", c.row, c.col, err)
		}
	}
}

func aliveSet(sim *Simulation) []cell {
	var out []cell
	for row := range sim.Height() {
		for col := range sim.Width() {
			if sim.Alive(row, col) {
				out = append(out, cell{row, col})
			}
		}
	}
	return out
}

func assertAlive(t *testing.T, sim *Simulation, want ...cell) {
	t.Helper()
	got := aliveSet(sim)
	sort.Slice(want, func(i, j int) bool {
		if want[i].row != want[j].row {
			return want[i].row < want[j].row
		}
		return want[i].col < want[j].col
	})
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("generation %d alive = %v, want %v", sim.Generation(), got, want)
	}
}

func TestNewSimulationEmpty(t *testing.T) {
	sim := emptySim(t, 8, 6)
	if sim.Width() != 8 || sim.Height() != 6 {
		t.Errorf("size = %dx%d, want 8x6", sim.Width(), sim.Height())
	}
	if sim.Generation() != 0 {
		t.Errorf("Generation() = %d, want 0", sim.Generation())
	}
	if sim.Running() {
		t.Error("new simulation is running, want editing")
	}
	if n := sim.LiveCells(); n != 0 {
		t.Errorf("LiveCells() = %d, want 0", n)
	}
}

func TestNewSimulationRejectsBadInput(t *testing.T) {
	if _, err := NewSimulation(0, 4, InitEmpty, 0); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero width error = %v, want ErrInvalidDimensions", err)
	}
	if _, err := NewSimulation(4, 4, InitMode(42), 0); !errors.Is(err, ErrUnknownInitMode) {
		t.Errorf("unknown mode error = %v, want ErrUnknownInitMode", err)
	}
}

func TestNewSimulationRandomIsSeeded(t *testing.T) {
	a, err := NewSimulation(32, 32, InitRandom, 99)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewSimulation(32, 32, InitRandom, 99)
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewSimulation(32, 32, InitRandom, 100)
	if err != nil {
		t.Fatal(err)
	}

	if a.Hash() != b.Hash() {
		t.Error("same seed produced different grids")
	}
	if a.Hash() == c.Hash() {
		t.Error("different seeds produced the same grid")
	}
	// 1024 fair coin flips: anything outside this band is a broken source
	if n := a.LiveCells(); n < 400 || n > 624 {
		t.Errorf("LiveCells() = %d, want roughly half of 1024", n)
	}
	if a.Running() {
		t.Error("random simulation is running, want editing")
	}
}

func TestNewSimulationPatterns(t *testing.T) {
	sim, err := NewSimulation(32, 32, InitPatterns, 0)
	if err != nil {
		t.Fatal(err)
	}
	if n := sim.LiveCells(); n != 20 {
		t.Errorf("LiveCells() = %d, want 20", n)
	}

	tiny, err := NewSimulation(3, 3, InitPatterns, 0)
	if err != nil {
		t.Fatal(err)
	}
	if n := tiny.LiveCells(); n != 0 {
		t.Errorf("patterns on a 3x3 grid placed %d cells, want 0", n)
	}
}

func TestParseInitMode(t *testing.T) {
	tests := []struct {
		in      string
		want    InitMode
		wantErr bool
	}{
		{"empty", InitEmpty, false},
		{"", InitEmpty, false},
		{"Random", InitRandom, false},
		{" patterns ", InitPatterns, false},
		{"glider", InitEmpty, true},
	}
	for _, tt := range tests {
		got, err := ParseInitMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseInitMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseInitMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAdvanceAllDeadStaysDead(t *testing.T) {
	sim := emptySim(t, 6, 6)
	for range 3 {
		sim.Advance()
	}
	assertAlive(t, sim)
}

func TestAdvanceIsolatedCellDies(t *testing.T) {
	sim := emptySim(t, 5, 5)
	setAlive(t, sim, cell{2, 2})
	sim.Advance()
	assertAlive(t, sim)
}

func TestAdvanceBlockIsStill(t *testing.T) {
	sim := emptySim(t, 6, 6)
	block := []cell{{2, 2}, {2, 3}, {3, 2}, {3, 3}}
	setAlive(t, sim, block...)
	for range 3 {
		sim.Advance()
		assertAlive(t, sim, block...)
	}
}

func TestAdvanceBlinkerOscillates(t *testing.T) {
	sim := emptySim(t, 5, 5)
	horizontal := []cell{{2, 1}, {2, 2}, {2, 3}}
	vertical := []cell{{1, 2}, {2, 2}, {3, 2}}
	setAlive(t, sim, horizontal...)

	sim.Advance()
	assertAlive(t, sim, vertical...)
	sim.Advance()
	assertAlive(t, sim, horizontal...)
}

func TestAdvanceDoesNotWrap(t *testing.T) {
	// on a torus this blinker would keep oscillating through the bottom row
	sim := emptySim(t, 5, 5)
	setAlive(t, sim, cell{0, 1}, cell{0, 2}, cell{0, 3})

	sim.Advance()
	assertAlive(t, sim, cell{0, 2}, cell{1, 2})
	sim.Advance()
	assertAlive(t, sim)
}

func TestAdvanceGliderTravels(t *testing.T) {
	sim := emptySim(t, 10, 10)
	if err := PlaceGlider(sim.grid, 1, 1); err != nil {
		t.Fatal(err)
	}
	for range 4 {
		sim.Advance()
	}
	assertAlive(t, sim, cell{2, 3}, cell{3, 4}, cell{4, 2}, cell{4, 3}, cell{4, 4})
}

func TestAdvanceMatchesNeighborRule(t *testing.T) {
	sim, err := NewSimulation(12, 9, InitRandom, 5)
	if err != nil {
		t.Fatal(err)
	}
	before := sim.Cells()
	counts := make([][]int, sim.Height())
	for row := range sim.Height() {
		counts[row] = make([]int, sim.Width())
		for col := range sim.Width() {
			counts[row][col] = sim.CountLiveNeighbors(row, col)
		}
	}

	sim.Advance()

	for row := range sim.Height() {
		for col := range sim.Width() {
			n := counts[row][col]
			want := n == 3 || (before[row][col] && n == 2)
			if got := sim.Alive(row, col); got != want {
				t.Errorf("cell (%d, %d) alive=%v neighbors=%d: got %v, want %v",
					row, col, before[row][col], n, got, want)
			}
		}
	}
}

func TestGenerationCounter(t *testing.T) {
	sim := emptySim(t, 4, 4)
	for i := uint64(1); i <= 5; i++ {
		sim.Advance()
		if sim.Generation() != i {
			t.Fatalf("Generation() = %d after %d steps", sim.Generation(), i)
		}
	}

	_ = sim.ToggleCell(1, 1)
	_ = sim.SetCell(2, 2, true)
	sim.ToggleRunning()
	sim.ToggleRunning()
	if sim.Generation() != 5 {
		t.Errorf("edits and toggles changed Generation() to %d", sim.Generation())
	}
}

func TestToggleRunning(t *testing.T) {
	sim := emptySim(t, 3, 3)
	sim.ToggleRunning()
	if !sim.Running() {
		t.Fatal("ToggleRunning did not start the simulation")
	}
	sim.ToggleRunning()
	if sim.Running() {
		t.Fatal("ToggleRunning did not stop the simulation")
	}
	sim.SetRunning(true)
	if !sim.Running() {
		t.Fatal("SetRunning(true) left the simulation editing")
	}
}

func TestToggleCellInvolution(t *testing.T) {
	sim := emptySim(t, 5, 5)
	setAlive(t, sim, cell{0, 0})
	for _, c := range []cell{{0, 0}, {4, 4}, {2, 3}} {
		was := sim.Alive(c.row, c.col)
		if err := sim.ToggleCell(c.row, c.col); err != nil {
			t.Fatal(err)
		}
		if sim.Alive(c.row, c.col) == was {
			t.Errorf("ToggleCell(%d, %d) did not flip", c.row, c.col)
		}
		if err := sim.ToggleCell(c.row, c.col); err != nil {
			t.Fatal(err)
		}
		if sim.Alive(c.row, c.col) != was {
			t.Errorf("ToggleCell(%d, %d) twice did not restore the cell", c.row, c.col)
		}
	}
}

func TestEditsOutOfRange(t *testing.T) {
	sim := emptySim(t, 4, 3)
	for _, c := range []cell{{3, 0}, {0, 4}, {-1, 2}} {
		if err := sim.ToggleCell(c.row, c.col); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("ToggleCell(%d, %d) error = %v, want ErrOutOfRange", c.row, c.col, err)
		}
		if err := sim.SetCell(c.row, c.col, true); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("SetCell(%d, %d) error = %v, want ErrOutOfRange", c.row, c.col, err)
		}
	}

	sim.ToggleRunning()
	if err := sim.ToggleCell(3, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("ToggleCell while running error = %v, want ErrOutOfRange", err)
	}
}

func TestEditsIgnoredWhileRunning(t *testing.T) {
	sim := emptySim(t, 4, 4)
	sim.ToggleRunning()

	if err := sim.ToggleCell(1, 1); err != nil {
		t.Fatalf("ToggleCell while running: %v", err)
	}
	if err := sim.SetCell(2, 2, true); err != nil {
		t.Fatalf("SetCell while running: %v", err)
	}
	assertAlive(t, sim)
}

func BenchmarkAdvance(b *testing.B) {
	for _, size := range []int{32, 128, 512} {
		sim, err := NewSimulation(size, size, InitRandom, 1)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sim.Advance()
			}
		})
	}
}
