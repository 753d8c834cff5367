//go:build !ebiten

package main

import (
	"lifeview/internal/config"
	"lifeview/internal/sim"
	"lifeview/internal/term"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

func run(cfg *config.Config, state *sim.State) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[run] failed to open terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "[run] failed to initialize terminal")
	}
	defer screen.Fini()

	term.NewView(screen, state).Run(cfg.TPS)
	return nil
}
