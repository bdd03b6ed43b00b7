package forest

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Summary condenses one realisation of an ensemble.
type Summary struct {
	Seed         int64
	Final        Fractions
	Extinguished int
}

// Ensemble runs independent realisations with seeds seedStart, seedStart+1, ...
// in parallel. Results are ordered by seed.
func Ensemble(ctx context.Context, cfg Config, runs int, seedStart int64) ([]Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if runs < 1 {
		return nil, fmt.Errorf("runs=%d: %w", runs, ErrParameterBounds)
	}

	out := make([]Summary, runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for idx := 0; idx < runs; idx++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			c := cfg
			c.Seed = seedStart + int64(idx)
			run, err := Simulate(c)
			if err != nil {
				return err
			}
			out[idx] = Summary{
				Seed:         c.Seed,
				Final:        run.Final().Fractions(),
				Extinguished: run.Extinguished(),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Mean averages the final fractions across an ensemble.
func Mean(s []Summary) Fractions {
	var m Fractions
	if len(s) == 0 {
		return m
	}
	for _, r := range s {
		m.Dead += r.Final.Dead
		m.Bare += r.Final.Bare
		m.Forest += r.Final.Forest
		m.Burning += r.Final.Burning
	}
	n := float64(len(s))
	m.Dead /= n
	m.Bare /= n
	m.Forest /= n
	m.Burning /= n
	return m
}
