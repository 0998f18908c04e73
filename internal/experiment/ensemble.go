package experiment

import (
	"context"
	"sync"

	"github.com/san-kum/stellar/internal/config"
)

// Ensemble repeats one configuration over consecutive seeds, one
// goroutine per run. Each run owns its engine and metrics.
type Ensemble struct {
	base      config.Config
	ticks     int
	numRuns   int
	seedStart int64
	registry  *Registry
	names     []string
}

func NewEnsemble(base config.Config, ticks, numRuns int, seedStart int64, names []string) *Ensemble {
	return &Ensemble{
		base:      base,
		ticks:     ticks,
		numRuns:   numRuns,
		seedStart: seedStart,
		registry:  NewRegistry(),
		names:     names,
	}
}

func (e *Ensemble) Run(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfg := e.base
			cfg.Seed = e.seedStart + int64(idx)

			ms, err := e.registry.Metrics(e.names)
			if err != nil {
				errs[idx] = err
				return
			}
			exp := New(cfg, e.ticks)
			if err := exp.Setup(nil, ms); err != nil {
				errs[idx] = err
				return
			}
			results[idx], errs[idx] = exp.Run(ctx)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// Mean averages each final metric across results.
func Mean(results []*Result) map[string]float64 {
	out := make(map[string]float64)
	if len(results) == 0 {
		return out
	}
	for _, r := range results {
		for name, v := range r.Metrics {
			out[name] += v
		}
	}
	for name := range out {
		out[name] /= float64(len(results))
	}
	return out
}
