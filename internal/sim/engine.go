package sim

import (
	"context"
	"sync"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/stellar/internal/attractor"
	"github.com/san-kum/stellar/internal/charge"
	"github.com/san-kum/stellar/internal/config"
	"github.com/san-kum/stellar/internal/effects"
	"github.com/san-kum/stellar/internal/lightning"
	"github.com/san-kum/stellar/internal/particle"
	"github.com/san-kum/stellar/internal/physics"
)

type Option func(*Engine)

// WithField shares an attractor field with the engine. The engine rescales
// it on every resize.
func WithField(f *attractor.Field) Option {
	return func(e *Engine) { e.field = f }
}

// WithParticles replaces the initial random population.
func WithParticles(ps []particle.Particle) Option {
	return func(e *Engine) { e.store.Replace(append([]particle.Particle(nil), ps...)) }
}

type pending struct {
	size  *[2]float64
	cfg   *config.Config
	reset bool
}

type Engine struct {
	cfg           config.Config
	width, height float64
	rng           *rand.Rand
	store         *particle.Store
	grid          *charge.Grid
	field         *attractor.Field
	gen           *lightning.Generator
	effects       *effects.Tracker
	tick          uint64
	last          Stats
	totals        Totals

	mu      sync.Mutex
	pending pending
}

// New builds an engine for cfg, sized to cfg.Width x cfg.Height and seeded
// with cfg.Seed.
func New(cfg config.Config, opts ...Option) *Engine {
	rng := rand.New(rand.NewSource(uint64(cfg.Seed)))
	e := &Engine{
		cfg:     cfg,
		width:   cfg.Width,
		height:  cfg.Height,
		rng:     rng,
		grid:    charge.NewGrid(cfg.Width, cfg.Height),
		gen:     lightning.NewGenerator(rng),
		effects: effects.NewTracker(),
	}
	e.store = particle.NewStore(e.spawn())
	for _, opt := range opts {
		opt(e)
	}
	if e.field == nil {
		e.field = attractor.NewField(e.width, e.height)
	} else {
		e.field.Rescale(e.width, e.height)
	}
	e.last = Stats{Live: e.store.LiveCount()}
	return e
}

func (e *Engine) spawn() []particle.Particle {
	return particle.Populate(e.cfg.ParticleCount, e.cfg.PositiveRatio, e.cfg.AntiparticleRatio, e.width, e.height, e.rng)
}

func (e *Engine) Field() *attractor.Field { return e.field }

// Config returns the configuration in effect for the current tick.
func (e *Engine) Config() config.Config { return e.cfg }

func (e *Engine) Viewport() (float64, float64) { return e.width, e.height }

func (e *Engine) Particles() []particle.Particle { return e.store.Live() }

func (e *Engine) Stats() Stats   { return e.last }
func (e *Engine) Totals() Totals { return e.totals }

// Resize queues a viewport change for the next tick.
func (e *Engine) Resize(width, height float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending.size = &[2]float64{width, height}
}

// SetConfig queues cfg for the next tick. Changing the particle count or
// either ratio repopulates; anything else applies in place. The viewport
// fields of cfg are ignored in favor of Resize.
func (e *Engine) SetConfig(cfg config.Config) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending.cfg = &cfg
}

func (e *Engine) applyPending() {
	e.mu.Lock()
	p := e.pending
	e.pending = pending{}
	e.mu.Unlock()

	if p.size != nil {
		e.width, e.height = p.size[0], p.size[1]
		e.cfg.Width, e.cfg.Height = e.width, e.height
		e.grid.Resize(e.width, e.height)
		e.field.Rescale(e.width, e.height)
	}
	if p.cfg != nil {
		next := *p.cfg
		next.Width, next.Height = e.width, e.height
		repopulate := config.NeedsRepopulation(e.cfg, next)
		e.cfg = next
		if repopulate && !p.reset {
			e.store.Replace(e.spawn())
		}
	}
	if p.reset {
		e.store.Replace(e.spawn())
		e.effects.ClearAnnihilations()
	}
}

// Reset queues a repopulation and a flash clear for the next tick, after
// any pending Resize or SetConfig. Active bolts are left to decay.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending.reset = true
}

// Tick advances the simulation by one frame.
func (e *Engine) Tick() Stats {
	e.applyPending()
	e.tick++

	st := Stats{Tick: e.tick}
	ps := e.store.All()

	e.grid.Rebuild(ps)
	st.PeakCharge = e.grid.PeakCharge()
	st.Bolts = charge.CheckForDischarge(e.grid, e.cfg.DischargeThreshold, e.rng, e.strike)

	st.Annihilations = physics.ApplyForces(ps, e.cfg, e.effects.AddAnnihilation)

	var targets []r2.Vec
	if e.cfg.GravityWellStrength != 0 {
		targets = e.field.Targets()
	}
	for i := range ps {
		p := &ps[i]
		if !p.Alive {
			continue
		}
		attractor.Pull(p, targets, e.cfg.GravityWellStrength)
		physics.Integrate(p, e.cfg, e.width, e.height, e.rng)
	}

	e.effects.Step()

	if e.compactDue() {
		st.Compacted = e.store.Compact()
	}
	st.Live = e.store.LiveCount()

	e.totals.Ticks = e.tick
	e.totals.Annihilations += st.Annihilations
	e.totals.Bolts += st.Bolts
	e.last = st
	return st
}

func (e *Engine) strike(from, to r2.Vec) {
	b := e.gen.Generate(from, to)
	lightning.Scatter(b, e.store.All())
	e.effects.AddBolt(b)
}

func (e *Engine) compactDue() bool {
	k := uint64(1)
	if e.cfg.CompactEvery > 1 {
		k = uint64(e.cfg.CompactEvery)
	}
	return e.tick%k == 0
}

// Run ticks once per frame signal and hands each snapshot to observe until
// ctx is done or frames is closed.
func (e *Engine) Run(ctx context.Context, frames <-chan time.Time, observe func(Snapshot)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-frames:
			if !ok {
				return nil
			}
			e.Tick()
			if observe != nil {
				observe(e.Snapshot())
			}
		}
	}
}
