package ensemble

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/corefield/internal/config"
)

// Ensemble repeats a headless run over consecutive seeds.
type Ensemble struct {
	cfg       *config.Config
	numRuns   int
	seedStart int64
}

func New(cfg *config.Config, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{cfg: cfg, numRuns: numRuns, seedStart: seedStart}
}

// Run executes every seed concurrently. Results are in seed order; the first
// failing run cancels the rest and its error is returned.
func (e *Ensemble) Run(ctx context.Context, p Params) ([]*Run, error) {
	results := make([]*Run, e.numRuns)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < e.numRuns; i++ {
		g.Go(func() error {
			cfgCopy := *e.cfg
			cfgCopy.Seed = e.seedStart + int64(i)

			run, err := Simulate(ctx, &cfgCopy, p)
			if err != nil {
				return err
			}
			results[i] = run
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Mean averages each metric across runs.
func Mean(runs []*Run) map[string]float64 {
	out := make(map[string]float64)
	if len(runs) == 0 {
		return out
	}
	for _, r := range runs {
		for k, v := range r.Values() {
			out[k] += v
		}
	}
	for k := range out {
		out[k] /= float64(len(runs))
	}
	return out
}
