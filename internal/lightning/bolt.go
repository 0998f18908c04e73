// Package lightning builds jagged, branching bolt geometry between two
// points and scatters particles caught near a fresh bolt.
//
// The main path is subdivided with perpendicular jitter under a tent
// envelope: zero at both endpoints, widest at the midpoint. Branches grow
// recursively from interior points with an explicit depth that decreases
// on every call, so recursion always ends.
package lightning

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/stellar/internal/particle"
)

const (
	Lifetime       = 15
	SegmentSpacing = 30.0
	MinSegments    = 5
	Amplitude      = 60.0

	BranchChance    = 0.3
	BranchSpread    = math.Pi * 0.8
	BranchMinLength = 30.0
	BranchExtra     = 50.0
	BranchDepth     = 2
	BranchStep      = 20.0
	BranchWiggle    = 0.5

	SubBranchChance = 0.2
	SubBranchSpread = math.Pi * 0.6

	ScatterRadius = 50.0
	ScatterForce  = 8.0
)

// Rand is the random source used for jitter and branching.
type Rand interface {
	Float64() float64
}

type Bolt struct {
	Segments []r2.Vec
	Branches [][]r2.Vec
	Life     int
	MaxLife  int
}

// Alpha is the remaining share of the bolt's lifetime.
func (b *Bolt) Alpha() float64 {
	if b.MaxLife <= 0 {
		return 0
	}
	return float64(b.Life) / float64(b.MaxLife)
}

func (b *Bolt) Alive() bool { return b.Life > 0 }

// Clone deep-copies the bolt geometry.
func (b *Bolt) Clone() *Bolt {
	c := &Bolt{Life: b.Life, MaxLife: b.MaxLife}
	c.Segments = append([]r2.Vec(nil), b.Segments...)
	c.Branches = make([][]r2.Vec, len(b.Branches))
	for i, br := range b.Branches {
		c.Branches[i] = append([]r2.Vec(nil), br...)
	}
	return c
}

// Scatter kicks every live particle within ScatterRadius of a main-path
// point away from it, harder the closer it is.
func Scatter(b *Bolt, ps []particle.Particle) {
	for _, seg := range b.Segments {
		for i := range ps {
			p := &ps[i]
			if !p.Alive {
				continue
			}
			delta := r2.Sub(p.Pos, seg)
			dist := r2.Norm(delta)
			if dist <= 0 || dist >= ScatterRadius {
				continue
			}
			force := (1 - dist/ScatterRadius) * ScatterForce
			p.Vel = r2.Add(p.Vel, r2.Scale(force/dist, delta))
		}
	}
}
