package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

var errQuit = errors.New("quit requested")

// Driver runs a simulation inside a terminal. Input events are polled on
// their own goroutine; the simulation is only touched by the loop goroutine.
type Driver struct {
	screen   tcell.Screen
	renderer *Renderer
	sim      *model.Simulation
	viewport model.Viewport
	throttle *utils.Throttle
	tracker  *model.StagnationTracker
	stats    *utils.Stats
	mouse    edgeDetector
	config   utils.Config
}

// NewDriver prepares a driver for an uninitialized screen
func NewDriver(screen tcell.Screen, sim *model.Simulation, config utils.Config) (*Driver, error) {
	viewport, err := model.NewViewport(sim.Width()*cellColumns, sim.Height(), sim.Width(), sim.Height())
	if err != nil {
		return nil, errors.Wrap(err, "[NewDriver] failed to build viewport")
	}
	d := &Driver{
		screen:   screen,
		renderer: &Renderer{screen: screen},
		sim:      sim,
		viewport: viewport,
		throttle: utils.NewThrottle(config.TicksPerStep),
		tracker:  model.NewStagnationTracker(0),
		stats:    utils.NewStats(),
		config:   config,
	}
	d.tracker.Observe(sim.Hash())
	return d, nil
}

// Stats returns the performance counters gathered so far
func (d *Driver) Stats() *utils.Stats {
	return d.stats
}

// Run initializes the screen and drives the simulation until the user quits,
// the generation limit is reached or ctx is cancelled.
func (d *Driver) Run(ctx context.Context) error {
	if err := d.screen.Init(); err != nil {
		return errors.Wrap(err, "[Run] failed to initialize screen")
	}
	d.screen.EnableMouse()
	d.screen.Clear()

	var (
		eg, egCtx = errgroup.WithContext(ctx)
		events    = make(chan tcell.Event)
	)

	eg.Go(func() error {
		for {
			// PollEvent returns nil once the screen is finalized
			ev := d.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-egCtx.Done():
				return nil
			}
		}
	})

	eg.Go(func() error {
		defer d.screen.Fini()

		ticker := time.NewTicker(time.Second / time.Duration(d.config.TicksPerSecond))
		defer ticker.Stop()

		d.Draw()
		for {
			select {
			case <-egCtx.Done():
				return nil
			case ev := <-events:
				if d.HandleEvent(ev) {
					return errQuit
				}
			case <-ticker.C:
				d.Tick()
				if d.Done() {
					return errQuit
				}
			}
			d.Draw()
		}
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

// HandleEvent applies one input event and reports whether the user asked to quit
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return true
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			d.sim.ToggleRunning()
			d.throttle.Reset()
		}
	case *tcell.EventMouse:
		if !d.mouse.Pressed(ev.Buttons()&tcell.Button1 != 0) || d.sim.Running() {
			return false
		}
		row, col := d.viewport.CellAt(ev.Position())
		if err := d.sim.ToggleCell(row, col); err == nil {
			d.tracker.Reset()
			d.tracker.Observe(d.sim.Hash())
		}
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return false
}

// Tick advances the simulation when running and a full step period has elapsed
func (d *Driver) Tick() {
	if !d.sim.Running() || !d.throttle.Tick() {
		return
	}
	d.sim.Advance()
	d.stats.Update(d.sim.Generation(), d.sim.LiveCells(), time.Now())
	d.tracker.Observe(d.sim.Hash())
}

// Done reports whether the configured generation limit has been reached
func (d *Driver) Done() bool {
	return d.config.MaxGenerations > 0 && d.sim.Generation() >= d.config.MaxGenerations
}

// Status summarizes the current generation
func (d *Driver) Status() string {
	return model.Status(d.sim.LiveCells(), d.tracker.Stagnant())
}

// Draw renders the current generation and status line
func (d *Driver) Draw() {
	d.renderer.Display(d.sim, statusLine(d.sim, d.Status(), d.stats.GenerationsPerSecond))
}
