//go:build ebiten

package main

import (
	"lifeview/internal/app"
	"lifeview/internal/config"
	"lifeview/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

func run(cfg *config.Config, state *sim.State) error {
	w, h := state.ScreenSize()
	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(app.New(state)); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "[run] window loop failed")
	}
	return nil
}
