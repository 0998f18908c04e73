package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/stellar/internal/config"
	"github.com/san-kum/stellar/internal/particle"
)

const (
	// KillDistance is the separation below which an eligible pair annihilates.
	KillDistance = 15.0
	// ForceScale multiplies (rest length - distance) before volatility.
	ForceScale = 0.0005
	// AnnihilationPull boosts the force between eligible pairs outside kill range.
	AnnihilationPull = 3.0
)

// PairForce returns the force acting on a from its interaction with b, so
// that b receives exactly the negation. delta is b.Pos - a.Pos and dist its
// length, which must be non-zero.
func PairForce(a, b *particle.Particle, delta r2.Vec, dist float64, cfg config.Config) r2.Vec {
	magnitude := (cfg.EdgeLength - dist) * ForceScale * cfg.Volatility

	eligible := particle.CanAnnihilate(a, b)
	if eligible {
		magnitude *= AnnihilationPull
	}

	dir := r2.Scale(1/dist, delta)
	if !eligible && a.Polarity == b.Polarity {
		dir = r2.Scale(-1, dir)
	}
	return r2.Scale(magnitude, dir)
}

// ApplyForces runs one frame of pairwise interaction over ps and returns
// the number of annihilations. Each annihilated pair is flagged dead at
// once, so it takes part in no further pair this frame, and onAnnihilate
// (when non-nil) receives the midpoint.
func ApplyForces(ps []particle.Particle, cfg config.Config, onAnnihilate func(at r2.Vec)) int {
	if !cfg.PolarityEnabled {
		return 0
	}

	annihilated := 0
	for i := range ps {
		p1 := &ps[i]
		for j := i + 1; j < len(ps); j++ {
			if !p1.Alive {
				break
			}
			p2 := &ps[j]
			if !p2.Alive {
				continue
			}

			delta := r2.Sub(p2.Pos, p1.Pos)
			dist := r2.Norm(delta)
			if dist >= cfg.ConnectivityRadius {
				continue
			}

			if particle.CanAnnihilate(p1, p2) && dist < KillDistance {
				p1.Alive = false
				p2.Alive = false
				annihilated++
				if onAnnihilate != nil {
					onAnnihilate(r2.Scale(0.5, r2.Add(p1.Pos, p2.Pos)))
				}
				continue
			}

			// coincident pairs have no direction
			if dist == 0 {
				continue
			}

			f := PairForce(p1, p2, delta, dist, cfg)
			p1.Vel = r2.Add(p1.Vel, r2.Scale(1/p1.Mass, f))
			p2.Vel = r2.Sub(p2.Vel, r2.Scale(1/p2.Mass, f))
		}
	}
	return annihilated
}
