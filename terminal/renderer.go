package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/go-life/model"
)

const (
	// each cell is drawn two columns wide so it looks roughly square
	cellColumns = 2
	statusRows  = 1
)

var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.NewRGBColor(64, 230, 64))
	deadStyle   = tcell.StyleDefault.Background(tcell.NewRGBColor(38, 38, 38))
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

// Renderer draws a simulation onto a tcell screen
type Renderer struct {
	screen tcell.Screen
}

// Display renders the grid followed by a status line
func (r *Renderer) Display(sim *model.Simulation, status string) {
	for row := range sim.Height() {
		for col := range sim.Width() {
			style := deadStyle
			if sim.Alive(row, col) {
				style = aliveStyle
			}
			for i := range cellColumns {
				r.screen.SetContent(col*cellColumns+i, row, ' ', nil, style)
			}
		}
	}
	r.drawText(0, sim.Height(), status)
	r.screen.Show()
}

func (r *Renderer) drawText(x, y int, text string) {
	width, _ := r.screen.Size()
	for _, ch := range text {
		if x >= width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, statusStyle)
		x++
	}
	for ; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, statusStyle)
	}
}

// statusLine formats the line shown below the grid
func statusLine(sim *model.Simulation, status string, gensPerSecond float64) string {
	mode := "Editing"
	if sim.Running() {
		mode = "Running"
	}
	return fmt.Sprintf("Gen: %d | Living: %d | Status: %s | %s | %.1f gen/sec | space: run/pause, click: toggle, q: quit",
		sim.Generation(), sim.LiveCells(), status, mode, gensPerSecond)
}
