package experiment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/san-kum/stellar/internal/attractor"
	"github.com/san-kum/stellar/internal/config"
	"github.com/san-kum/stellar/internal/metrics"
	"github.com/san-kum/stellar/internal/sim"
)

var ErrNotSetup = errors.New("stellar: experiment not set up")

// SeriesNames lists the per-tick series recorded by every run, in column
// order.
var SeriesNames = []string{"live", "annihilations", "bolts", "peak_charge", "kinetic_energy"}

type Result struct {
	Ticks    int
	Series   map[string][]float64
	Metrics  map[string]float64
	Duration time.Duration
}

type Experiment struct {
	cfg     config.Config
	ticks   int
	engine  *sim.Engine
	metrics []metrics.Metric
	observe func(sim.Snapshot)
}

func New(cfg config.Config, ticks int) *Experiment {
	return &Experiment{cfg: cfg, ticks: ticks}
}

// Setup builds the engine. A nil field runs without attractor targets.
func (e *Experiment) Setup(field *attractor.Field, ms []metrics.Metric) error {
	var opts []sim.Option
	if field != nil {
		opts = append(opts, sim.WithField(field))
	}
	e.engine = sim.New(e.cfg, opts...)
	e.metrics = ms
	for _, m := range e.metrics {
		m.Reset()
	}
	return nil
}

// Observe registers fn to see every snapshot after the metrics do.
func (e *Experiment) Observe(fn func(sim.Snapshot)) {
	e.observe = fn
}

// Run drives the engine through the configured number of ticks as fast as
// the engine allows.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.engine == nil {
		return nil, ErrNotSetup
	}

	res := &Result{
		Series:  make(map[string][]float64, len(SeriesNames)),
		Metrics: make(map[string]float64, len(e.metrics)),
	}
	for _, name := range SeriesNames {
		res.Series[name] = make([]float64, 0, e.ticks)
	}

	frames := make(chan time.Time)
	go func() {
		defer close(frames)
		for i := 0; i < e.ticks; i++ {
			select {
			case frames <- time.Now():
			case <-ctx.Done():
				return
			}
		}
	}()

	start := time.Now()
	err := e.engine.Run(ctx, frames, func(s sim.Snapshot) {
		res.Ticks++
		res.Series["live"] = append(res.Series["live"], float64(s.Live))
		res.Series["annihilations"] = append(res.Series["annihilations"], float64(s.Annihilations))
		res.Series["bolts"] = append(res.Series["bolts"], float64(s.Stats.Bolts))
		res.Series["peak_charge"] = append(res.Series["peak_charge"], s.PeakCharge)
		res.Series["kinetic_energy"] = append(res.Series["kinetic_energy"], metrics.MeanKineticEnergy(s))
		for _, m := range e.metrics {
			m.Observe(s)
		}
		if e.observe != nil {
			e.observe(s)
		}
	})
	res.Duration = time.Since(start)
	if err == nil {
		// the producer stops early on cancellation and closes frames
		err = ctx.Err()
	}
	if err != nil {
		return nil, fmt.Errorf("run stopped after %d ticks: %w", res.Ticks, err)
	}

	for _, m := range e.metrics {
		res.Metrics[m.Name()] = m.Value()
	}
	return res, nil
}

func (e *Experiment) Engine() *sim.Engine {
	return e.engine
}

// Run is the one-shot form: default metrics, no attractor targets.
func Run(ctx context.Context, cfg config.Config, ticks int) (*Result, error) {
	exp := New(cfg, ticks)
	if err := exp.Setup(nil, metrics.Default()); err != nil {
		return nil, err
	}
	return exp.Run(ctx)
}
