// Package sweep runs many independent random boards headlessly and reports
// how each one evolved.
package sweep

import (
	"context"
	"runtime"

	"lifeview/internal/core"
	"lifeview/internal/life"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Scenario describes one board to simulate.
type Scenario struct {
	Seed    int64
	Density float64
}

// Result summarizes a finished scenario.
type Result struct {
	Scenario
	InitialPop int
	FinalPop   int
	PeakPop    int
	// SettledAt is the generation at which the board became extinct, still
	// or period 2, or -1 when it was still active after the last generation.
	SettledAt int
	Status    life.Status
}

// Options controls a sweep.
type Options struct {
	Width, Height int
	Generations   int
	Workers       int
}

// Scenarios builds the cross product of seeds [firstSeed, firstSeed+count)
// and densities.
func Scenarios(firstSeed int64, count int, densities []float64) []Scenario {
	out := make([]Scenario, 0, count*len(densities))
	for _, d := range densities {
		for i := 0; i < count; i++ {
			out = append(out, Scenario{Seed: firstSeed + int64(i), Density: d})
		}
	}
	return out
}

// Run simulates every scenario on its own store, at most opts.Workers at a
// time. Results are returned in scenario order.
func Run(ctx context.Context, opts Options, scenarios []Scenario) ([]Result, error) {
	if opts.Width <= 0 || opts.Width%8 != 0 || opts.Height <= 0 {
		return nil, errors.Errorf("[Run] invalid grid size %dx%d", opts.Width, opts.Height)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(scenarios))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, sc := range scenarios {
		eg.Go(func() error {
			res, err := runScenario(ctx, opts, sc)
			if err != nil {
				return errors.Wrapf(err, "[Run] seed %d density %.2f", sc.Seed, sc.Density)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runScenario(ctx context.Context, opts Options, sc Scenario) (Result, error) {
	store := core.NewStore(opts.Width, opts.Height, sc.Seed)
	store.Randomize(sc.Density)

	res := Result{Scenario: sc, SettledAt: -1}
	res.InitialPop = store.Current().Population()
	res.PeakPop = res.InitialPop

	var hist life.History
	res.Status = hist.Observe(store.Current())
	if res.Status == life.Extinct {
		res.SettledAt = 0
		return res, nil
	}
	for gen := 1; gen <= opts.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		life.Advance(store)
		pop := store.Current().Population()
		res.FinalPop = pop
		if pop > res.PeakPop {
			res.PeakPop = pop
		}
		res.Status = hist.Observe(store.Current())
		if res.Status != life.Active {
			res.SettledAt = gen
			break
		}
	}
	if opts.Generations == 0 {
		res.FinalPop = res.InitialPop
	}
	return res, nil
}
