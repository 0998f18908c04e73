package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/stellar/internal/config"
	"github.com/san-kum/stellar/internal/particle"
)

const (
	Damping      = 0.98
	JitterScale  = 0.1
	MaxSpeedMult = 3.0
)

// MaxSpeed is the velocity ceiling for a volatility setting.
func MaxSpeed(volatility float64) float64 { return MaxSpeedMult * volatility }

// Integrate advances one live particle by a frame: random jitter scaled by
// volatility, damping, speed clamp, position step scaled by cfg.Speed, and
// an elastic bounce off the [0,width] x [0,height] walls.
func Integrate(p *particle.Particle, cfg config.Config, width, height float64, rng particle.Rand) {
	p.Vel.X += (rng.Float64() - 0.5) * cfg.Volatility * JitterScale
	p.Vel.Y += (rng.Float64() - 0.5) * cfg.Volatility * JitterScale

	p.Vel = r2.Scale(Damping, p.Vel)

	limit := MaxSpeed(cfg.Volatility)
	if speed := r2.Norm(p.Vel); speed > limit {
		if speed > 0 && limit > 0 {
			p.Vel = r2.Scale(limit/speed, p.Vel)
		} else {
			p.Vel = r2.Vec{}
		}
	}

	p.Pos = r2.Add(p.Pos, r2.Scale(cfg.Speed, p.Vel))

	if p.Pos.X < 0 || p.Pos.X > width {
		p.Vel.X = -p.Vel.X
		p.Pos.X = math.Max(0, math.Min(width, p.Pos.X))
	}
	if p.Pos.Y < 0 || p.Pos.Y > height {
		p.Vel.Y = -p.Vel.Y
		p.Pos.Y = math.Max(0, math.Min(height, p.Pos.Y))
	}
}
