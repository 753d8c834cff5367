// Package term runs the simulation in a terminal. Each grid cell is drawn as
// two character columns so cells look roughly square.
package term

import (
	"image/color"
	"time"

	"lifeview/internal/sim"
	"lifeview/internal/ui"

	"github.com/gdamore/tcell/v2"
)

// colsPerCell is the number of terminal columns covering one grid cell.
const colsPerCell = 2

// View translates terminal events into simulation input and draws the grid.
type View struct {
	screen tcell.Screen
	sim    *sim.State
	down   bool
}

// NewView binds a screen to a simulation state. The screen must already be
// initialized.
func NewView(screen tcell.Screen, s *sim.State) *View {
	screen.EnableMouse()
	screen.HideCursor()
	return &View{screen: screen, sim: s}
}

// Run drives the frame loop until the user quits: pending events are applied,
// the frame is drawn and then one generation is computed. Terminal events are
// read on a separate goroutine and handed over through a channel, so only
// this goroutine touches the simulation state.
func (v *View) Run(tps int) {
	if tps <= 0 {
		tps = 60
	}
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go v.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	for v.sim.Running {
		select {
		case ev := <-events:
			v.Handle(ev)
		case <-ticker.C:
			v.Draw()
			v.sim.Update()
		}
	}
}

// Handle applies one terminal event.
func (v *View) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		if cmd, ok := keyCommand(ev); ok {
			v.sim.Apply(cmd)
		}
	case *tcell.EventMouse:
		v.handleMouse(ev)
	}
}

func keyCommand(ev *tcell.EventKey) (sim.Command, bool) {
	switch ev.Key() {
	case tcell.KeyEscape:
		return sim.Clear, true
	case tcell.KeyCtrlC:
		return sim.Quit, true
	case tcell.KeyRune:
	default:
		return 0, false
	}
	switch ev.Rune() {
	case ' ':
		return sim.TogglePause, true
	case 'r', 'R':
		return sim.Randomize, true
	case 'c', 'C':
		return sim.RandomColor, true
	case 'v', 'V':
		return sim.ResetColor, true
	case 'n', 'N':
		return sim.StepOnce, true
	case 'h', 'H':
		return sim.ToggleHUD, true
	case 'q', 'Q':
		return sim.Quit, true
	}
	return 0, false
}

func (v *View) handleMouse(ev *tcell.EventMouse) {
	px, py := v.pixelAt(ev.Position())
	pressed := ev.Buttons()&tcell.Button1 != 0
	switch {
	case pressed && !v.down:
		v.down = true
		v.sim.PointerDown(px, py)
	case pressed:
		v.sim.PointerMove(px, py)
	case v.down:
		v.down = false
		v.sim.PointerUp()
	}
}

// pixelAt maps a terminal position onto the pixel space the simulation
// expects, so the same cell lookup serves both frontends.
func (v *View) pixelAt(col, row int) (int, int) {
	if col < 0 || row < 0 {
		return -1, -1
	}
	cs := v.sim.CellSize()
	return (col / colsPerCell) * cs, row * cs
}

// Draw paints the grid and, when enabled, the status lines below it.
func (v *View) Draw() {
	v.screen.Clear()
	g := v.sim.Grid()
	live := CellStyle(v.sim.Color)
	dead := CellStyle(v.sim.Background())
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			style := dead
			if g.Get(x, y) {
				style = live
			}
			for i := 0; i < colsPerCell; i++ {
				v.screen.SetContent(x*colsPerCell+i, y, ' ', nil, style)
			}
		}
	}
	if v.sim.ShowHUD {
		lines := append(ui.StatusLines(v.sim), ui.HelpLine)
		for i, line := range lines {
			v.drawText(0, g.H+i, line)
		}
	}
	v.screen.Show()
}

func (v *View) drawText(x, y int, s string) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
	}
}

// CellStyle returns a style whose background is c.
func CellStyle(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}
