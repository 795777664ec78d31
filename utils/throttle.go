package utils

// Throttle turns a fixed-rate tick stream into a slower one: Tick reports
// true once every `every` calls.
type Throttle struct {
	every int
	ticks int
}

func NewThrottle(every int) *Throttle {
	if every < 1 {
		every = 1
	}
	return &Throttle{every: every}
}

// Tick counts one tick and reports whether it completes a period
func (t *Throttle) Tick() bool {
	t.ticks++
	if t.ticks < t.every {
		return false
	}
	t.ticks = 0
	return true
}

// Reset starts a new period
func (t *Throttle) Reset() {
	t.ticks = 0
}
