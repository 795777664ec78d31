package model

const (
	defaultHistoryDepth = 5
	// a repeat within this many generations counts as a still life or short oscillator
	stagnationWindow = 3
)

// StagnationTracker remembers the hashes of recent generations to detect a
// board stuck in a still life or a short cycle.
type StagnationTracker struct {
	depth   int
	history []string
	current string
}

func NewStagnationTracker(depth int) *StagnationTracker {
	if depth < stagnationWindow+1 {
		depth = defaultHistoryDepth
	}
	return &StagnationTracker{depth: depth}
}

// Observe records the hash of the newest generation
func (t *StagnationTracker) Observe(hash string) {
	if t.current != "" {
		t.history = append(t.history, t.current)
		if len(t.history) > t.depth {
			t.history = t.history[1:]
		}
	}
	t.current = hash
}

// Stagnant reports whether the newest generation repeats one of the
// previous few
func (t *StagnationTracker) Stagnant() bool {
	if t.current == "" {
		return false
	}
	for i := 1; i <= stagnationWindow && i <= len(t.history); i++ {
		if t.history[len(t.history)-i] == t.current {
			return true
		}
	}
	return false
}

// Reset forgets all observed generations
func (t *StagnationTracker) Reset() {
	t.history = nil
	t.current = ""
}

// Status summarizes a generation for display
func Status(liveCells int, stagnant bool) string {
	switch {
	case liveCells == 0:
		return "Extinct"
	case stagnant:
		return "Stagnant"
	}
	return "Active"
}
