// Package particle owns the particle entities of the simulation: their
// derived mass and radius, batch population and dead-entry compaction.
//
// Particles live in a [Store] as a flat slice of values. Annihilated
// particles are only flagged dead during a tick so index-based pair loops
// stay stable; [Store.Compact] removes them later.
package particle

import "gonum.org/v1/gonum/spatial/r2"

type Polarity uint8

const (
	Positive Polarity = iota
	Negative
)

func (p Polarity) String() string {
	if p == Positive {
		return "positive"
	}
	return "negative"
}

type Kind uint8

const (
	Normal Kind = iota
	Antiparticle
)

func (k Kind) String() string {
	if k == Antiparticle {
		return "antiparticle"
	}
	return "normal"
}

// Rand is the random source consumed by population and motion.
type Rand interface {
	Float64() float64
}

type Particle struct {
	Pos      r2.Vec
	Vel      r2.Vec
	Polarity Polarity
	Kind     Kind
	Radius   float64
	Mass     float64
	Alive    bool
}

// New builds a live particle at rest with radius and mass derived from
// kind and polarity.
func New(pos r2.Vec, polarity Polarity, kind Kind) Particle {
	p := Particle{Pos: pos, Polarity: polarity, Kind: kind, Alive: true}
	switch {
	case kind == Antiparticle:
		p.Radius, p.Mass = 5, 0.8
	case polarity == Positive:
		p.Radius, p.Mass = 4, 1.5
	default:
		p.Radius, p.Mass = 3, 1
	}
	return p
}

func (p *Particle) IsAntiparticle() bool { return p.Kind == Antiparticle }

// CanAnnihilate reports whether exactly one of a and b is an antiparticle.
func CanAnnihilate(a, b *Particle) bool {
	return a.IsAntiparticle() != b.IsAntiparticle()
}

// Speed is the velocity magnitude.
func (p *Particle) Speed() float64 { return r2.Norm(p.Vel) }

// KineticEnergy is 0.5*m*|v|^2.
func (p *Particle) KineticEnergy() float64 { return 0.5 * p.Mass * r2.Norm2(p.Vel) }
