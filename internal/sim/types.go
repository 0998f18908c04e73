package sim

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/stellar/internal/charge"
	"github.com/san-kum/stellar/internal/effects"
	"github.com/san-kum/stellar/internal/lightning"
	"github.com/san-kum/stellar/internal/particle"
)

// Stats describes a single tick.
type Stats struct {
	Tick          uint64
	Live          int
	Annihilations int
	Bolts         int
	Compacted     int
	// PeakCharge is the largest |net| over all cells before discharge.
	PeakCharge float64
}

// Totals accumulate over the engine's lifetime, across resets.
type Totals struct {
	Ticks         uint64
	Annihilations int
	Bolts         int
}

// Snapshot is a read-only copy of the state a renderer needs for one frame.
type Snapshot struct {
	Stats
	Width, Height      float64
	ConnectivityRadius float64
	PolarityEnabled    bool
	Particles          []particle.Particle
	Bolts              []*lightning.Bolt
	Flashes            []effects.Annihilation
	Rows, Cols         int
	Cells              []charge.Cell
}

func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Stats:              e.last,
		Width:              e.width,
		Height:             e.height,
		ConnectivityRadius: e.cfg.ConnectivityRadius,
		PolarityEnabled:    e.cfg.PolarityEnabled,
		Particles:          e.store.Live(),
		Bolts:              e.effects.Bolts(),
		Flashes:            e.effects.Annihilations(),
		Rows:               e.grid.Rows,
		Cols:               e.grid.Cols,
		Cells:              e.grid.Snapshot(),
	}
}

type Relation uint8

const (
	Attract Relation = iota
	Repel
	Annihilate
)

func (r Relation) String() string {
	switch r {
	case Repel:
		return "repel"
	case Annihilate:
		return "annihilate"
	}
	return "attract"
}

// Connection joins two particles of a snapshot by index.
type Connection struct {
	A, B     int
	Distance float64
	// Opacity falls linearly from 1 at contact to 0 at the radius.
	Opacity  float64
	Relation Relation
}

// Connections lists every pair of snapshot particles closer than radius.
// Pairs are classified by charge whether or not polarity forces are on.
func Connections(s Snapshot, radius float64) []Connection {
	if radius <= 0 {
		return nil
	}
	var out []Connection
	ps := s.Particles
	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			d := r2.Norm(r2.Sub(ps[j].Pos, ps[i].Pos))
			if d >= radius {
				continue
			}
			c := Connection{A: i, B: j, Distance: d, Opacity: 1 - d/radius}
			switch {
			case particle.CanAnnihilate(&ps[i], &ps[j]):
				c.Relation = Annihilate
			case ps[i].Polarity == ps[j].Polarity:
				c.Relation = Repel
			default:
				c.Relation = Attract
			}
			out = append(out, c)
		}
	}
	return out
}
