// Package optim searches config parameter grids for the combination that
// optimizes a run metric.
package optim

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/stellar/internal/config"
	"github.com/san-kum/stellar/internal/experiment"
)

var ErrNoCandidates = errors.New("stellar: grid search produced no results")

type GridSearch struct {
	paramNames []string
	ranges     [][]float64
	maximize   bool
}

// Trial is one evaluated grid point.
type Trial struct {
	Params map[string]float64
	Score  float64
}

func NewGridSearch(params []string, ranges [][]float64, maximize bool) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges, maximize: maximize}
}

// ParseAxis reads "name=min:max:steps" into a parameter name and its
// evenly spaced values.
func ParseAxis(spec string) (string, []float64, error) {
	name, rng, ok := strings.Cut(spec, "=")
	if !ok {
		return "", nil, fmt.Errorf("axis %q: want name=min:max:steps", spec)
	}
	parts := strings.Split(rng, ":")
	if len(parts) != 3 {
		return "", nil, fmt.Errorf("axis %q: want name=min:max:steps", spec)
	}
	lo, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return "", nil, fmt.Errorf("axis %q: %w", spec, err)
	}
	hi, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return "", nil, fmt.Errorf("axis %q: %w", spec, err)
	}
	steps, err := strconv.Atoi(parts[2])
	if err != nil || steps < 1 {
		return "", nil, fmt.Errorf("axis %q: bad step count", spec)
	}

	values := make([]float64, steps)
	for i := range values {
		if steps == 1 {
			values[i] = lo
			continue
		}
		values[i] = lo + (hi-lo)*float64(i)/float64(steps-1)
	}
	return name, values, nil
}

// Search runs every grid point for ticks ticks and scores it by
// metricName. It returns the best trial and all trials in grid order.
func (g *GridSearch) Search(ctx context.Context, base config.Config, ticks int, metricName string) (Trial, []Trial, error) {
	var trials []Trial
	if err := g.searchRecursive(ctx, 0, base, make(map[string]float64), ticks, metricName, &trials); err != nil {
		return Trial{}, trials, err
	}
	if len(trials) == 0 {
		return Trial{}, nil, ErrNoCandidates
	}

	best := trials[0]
	for _, t := range trials[1:] {
		if g.better(t.Score, best.Score) {
			best = t
		}
	}
	return best, trials, nil
}

func (g *GridSearch) better(a, b float64) bool {
	if math.IsNaN(b) {
		return !math.IsNaN(a)
	}
	if g.maximize {
		return a > b
	}
	return a < b
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	cfg config.Config,
	current map[string]float64,
	ticks int,
	metricName string,
	trials *[]Trial,
) error {
	if depth == len(g.paramNames) {
		res, err := experiment.Run(ctx, cfg, ticks)
		if err != nil {
			return err
		}
		score, ok := res.Metrics[metricName]
		if !ok {
			return fmt.Errorf("unknown metric: %s", metricName)
		}

		params := make(map[string]float64, len(current))
		for k, v := range current {
			params[k] = v
		}
		*trials = append(*trials, Trial{Params: params, Score: score})
		return nil
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		next := cfg
		if err := next.SetParam(paramName, val); err != nil {
			return err
		}
		current[paramName] = val

		if err := g.searchRecursive(ctx, depth+1, next, current, ticks, metricName, trials); err != nil {
			return err
		}
	}
	return nil
}
