package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

var (
	aliveColor = color.RGBA{R: 64, G: 230, B: 64, A: 255}
	deadColor  = color.RGBA{R: 38, G: 38, B: 38, A: 255}
)

// Game adapts a simulation to ebiten's Update/Draw/Layout loop
type Game struct {
	sim       *model.Simulation
	viewport  model.Viewport
	throttle  *utils.Throttle
	title     string
	shownGen  uint64
	shownInit bool
}

// New builds a game whose cells evenly share the configured screen size
func New(sim *model.Simulation, config utils.Config) (*Game, error) {
	viewport, err := model.NewViewport(config.ScreenWidth, config.ScreenHeight, sim.Width(), sim.Height())
	if err != nil {
		return nil, errors.Wrap(err, "[New] failed to build viewport")
	}
	return &Game{
		sim:      sim,
		viewport: viewport,
		throttle: utils.NewThrottle(config.TicksPerStep),
		title:    config.Title,
	}, nil
}

// Update handles input and advances the simulation once every step period
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.ToggleRunning()
		g.throttle.Reset()
	}

	if !g.sim.Running() {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			row, col := g.viewport.CellAt(ebiten.CursorPosition())
			// clicks outside the grid are dropped
			_ = g.sim.ToggleCell(row, col)
		}
	} else if g.throttle.Tick() {
		g.sim.Advance()
	}

	g.updateTitle()
	return nil
}

func (g *Game) updateTitle() {
	gen := g.sim.Generation()
	if g.shownInit && gen == g.shownGen {
		return
	}
	ebiten.SetWindowTitle(Title(g.title, gen))
	g.shownGen, g.shownInit = gen, true
}

// Draw paints every cell in its alive or dead color
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	cw, ch := float32(g.viewport.CellWidth()), float32(g.viewport.CellHeight())
	for row := range g.sim.Height() {
		for col := range g.sim.Width() {
			clr := deadColor
			if g.sim.Alive(row, col) {
				clr = aliveColor
			}
			x, y := g.viewport.CellOrigin(row, col)
			vector.DrawFilledRect(screen, float32(x), float32(y), cw, ch, clr, false)
		}
	}
}

// Layout returns the area covered by the grid
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewport.ScreenSize()
}

// Title formats the window title for a generation
func Title(base string, generation uint64) string {
	return fmt.Sprintf("%s - Cycle: %d", base, generation)
}

// Run opens the window and blocks until it is closed
func Run(game *Game, config utils.Config) error {
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(Title(config.Title, game.sim.Generation()))
	ebiten.SetTPS(config.TicksPerSecond)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "[Run] game loop failed")
	}
	return nil
}
