// Command life is an interactive Game of Life editor and viewer.
//
// The default build runs in the terminal. Build with -tags ebiten for the
// windowed version.
package main

import (
	"flag"
	"log"
	"os"

	"lifeview/internal/config"
	"lifeview/internal/core"
	"lifeview/internal/sim"
)

const (
	exitConfig  = 2
	exitDisplay = 3
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life: ")

	cfg := config.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Printf("%v", err)
		os.Exit(exitConfig)
	}

	store := core.NewStore(cfg.Width, cfg.Height, cfg.Seed)
	state := sim.New(store, sim.Options{
		CellSize: cfg.CellSize,
		Density:  cfg.Density,
		GPS:      cfg.GPS,
		Paused:   cfg.Paused,
		ShowHUD:  cfg.ShowHUD,
	})

	if err := run(cfg, state); err != nil {
		log.Printf("%+v", err)
		os.Exit(exitDisplay)
	}
}
