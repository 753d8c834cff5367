//go:build ebiten

package app

import (
	"lifeview/internal/render"
	"lifeview/internal/sim"
	"lifeview/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyCommands = []struct {
	key ebiten.Key
	cmd sim.Command
}{
	{ebiten.KeySpace, sim.TogglePause},
	{ebiten.KeyEscape, sim.Clear},
	{ebiten.KeyR, sim.Randomize},
	{ebiten.KeyC, sim.RandomColor},
	{ebiten.KeyV, sim.ResetColor},
	{ebiten.KeyN, sim.StepOnce},
	{ebiten.KeyH, sim.ToggleHUD},
	{ebiten.KeyQ, sim.Quit},
}

// Game adapts the simulation state to the ebiten.Game interface.
type Game struct {
	sim     *sim.State
	painter *render.GridPainter
	hud     *ui.HUD
}

// New constructs a Game for the provided simulation state.
func New(s *sim.State) *Game {
	size := s.Size()
	return &Game{
		sim:     s,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(s),
	}
}

// Update advances the generation computed after the previous frame was drawn,
// then applies this frame's input. Together with Draw this yields the
// input, render, step order of the frame loop.
func (g *Game) Update() error {
	g.sim.Update()

	for _, kc := range keyCommands {
		if inpututil.IsKeyJustPressed(kc.key) {
			g.sim.Apply(kc.cmd)
		}
	}
	g.handleMouse()

	if !g.sim.Running {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.sim.PointerDown(mx, my)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.sim.PointerMove(mx, my)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.sim.PointerUp()
	}
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Grid(), g.sim.Color, g.sim.Background(), g.sim.CellSize())
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.sim.ScreenSize()
}
