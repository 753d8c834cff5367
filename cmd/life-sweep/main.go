package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"lifeview/internal/sweep"

	"github.com/pkg/errors"
)

func main() {
	width := flag.Int("w", 80, "grid width in cells (multiple of 8)")
	height := flag.Int("h", 80, "grid height in cells")
	generations := flag.Int("gens", 1000, "generations to simulate per board")
	seeds := flag.Int("seeds", 32, "boards per density")
	firstSeed := flag.Int64("seed", 1, "first seed")
	densities := flag.String("densities", "0.2,0.35,0.5", "comma-separated live probabilities")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "longest-lived boards to list")
	flag.Parse()

	dens, err := parseDensities(*densities)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scenarios := sweep.Scenarios(*firstSeed, *seeds, dens)
	fmt.Printf("Sweeping %d boards of %dx%d (%d workers, %d generations)\n",
		len(scenarios), *width, *height, *workers, *generations)

	start := time.Now()
	results, err := sweep.Run(ctx, sweep.Options{
		Width:       *width,
		Height:      *height,
		Generations: *generations,
		Workers:     *workers,
	}, scenarios)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	elapsed := time.Since(start)

	cells := float64(*width * *height)
	for _, d := range dens {
		var n, settled int
		var initial, final float64
		for _, r := range results {
			if r.Density != d {
				continue
			}
			n++
			initial += float64(r.InitialPop) / cells
			final += float64(r.FinalPop) / cells
			if r.SettledAt >= 0 {
				settled++
			}
		}
		fmt.Printf("density=%.2f boards=%d initial=%.3f final=%.3f settled=%d/%d\n",
			d, n, initial/float64(n), final/float64(n), settled, n)
	}

	sort.SliceStable(results, func(i, j int) bool { return lifetime(results[i]) > lifetime(results[j]) })
	fmt.Printf("\nTop %d longest-lived boards (elapsed %s):\n", *top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		r := results[i]
		settled := "still active"
		if r.SettledAt >= 0 {
			settled = fmt.Sprintf("%s at %d", r.Status, r.SettledAt)
		}
		fmt.Printf("%2d) seed=%d density=%.2f pop %d->%d peak=%d %s\n",
			i+1, r.Seed, r.Density, r.InitialPop, r.FinalPop, r.PeakPop, settled)
	}
}

func lifetime(r sweep.Result) int {
	if r.SettledAt < 0 {
		return int(^uint(0) >> 1)
	}
	return r.SettledAt
}

func parseDensities(s string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		d, err := strconv.ParseFloat(field, 64)
		if err != nil || d <= 0 || d > 1 {
			return nil, errors.Errorf("invalid density %q", field)
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil, errors.New("no densities given")
	}
	return out, nil
}
