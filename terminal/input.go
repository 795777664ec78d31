package terminal

// edgeDetector turns a held button state into one event per press.
// Terminals report motion and release as further mouse events, so only the
// up-to-down transition counts.
type edgeDetector struct {
	down bool
}

func (e *edgeDetector) Pressed(down bool) bool {
	fired := down && !e.down
	e.down = down
	return fired
}
