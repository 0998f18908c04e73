package metrics

import (
	"math"

	"github.com/san-kum/stellar/internal/sim"
)

// PeakCharge is the largest |net| cell charge seen over the run.
type PeakCharge struct {
	peak float64
}

func NewPeakCharge() *PeakCharge { return &PeakCharge{} }

func (p *PeakCharge) Name() string { return "peak_charge" }

func (p *PeakCharge) Observe(s sim.Snapshot) {
	p.peak = math.Max(p.peak, s.PeakCharge)
}

func (p *PeakCharge) Value() float64 { return p.peak }
func (p *PeakCharge) Reset()         { p.peak = 0 }

// KineticEnergy averages the per-particle kinetic energy over every
// observed tick. Ticks with no live particles are skipped.
type KineticEnergy struct {
	total   float64
	samples int
}

func NewKineticEnergy() *KineticEnergy { return &KineticEnergy{} }

func (k *KineticEnergy) Name() string { return "kinetic_energy" }

func (k *KineticEnergy) Observe(s sim.Snapshot) {
	if len(s.Particles) == 0 {
		return
	}
	k.total += MeanKineticEnergy(s)
	k.samples++
}

func (k *KineticEnergy) Value() float64 {
	if k.samples == 0 {
		return 0
	}
	return k.total / float64(k.samples)
}

func (k *KineticEnergy) Reset() {
	k.total = 0
	k.samples = 0
}

// MeanKineticEnergy is the average 0.5*m*|v|^2 over the snapshot.
func MeanKineticEnergy(s sim.Snapshot) float64 {
	if len(s.Particles) == 0 {
		return 0
	}
	var sum float64
	for i := range s.Particles {
		sum += s.Particles[i].KineticEnergy()
	}
	return sum / float64(len(s.Particles))
}
