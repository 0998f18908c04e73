package charge

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// ChargeNorm and DistanceScale shape the raw discharge probability
	// (|a|+|b|)/ChargeNorm * DistanceScale/max(dist, MinDistance).
	ChargeNorm    = 20.0
	DistanceScale = 300.0
	MinDistance   = 100.0
	// EventRate scales the probability down to keep bolts rare.
	EventRate = 0.02
	// Damping is applied to both cells' net charge after a discharge.
	Damping = 0.3
)

// Rand is the random source drawn once per candidate pair.
type Rand interface {
	Float64() float64
}

// Probability is the pre-rate discharge likelihood between two cells.
func Probability(netA, netB, dist float64) float64 {
	combined := math.Abs(netA) + math.Abs(netB)
	return (combined / ChargeNorm) * (DistanceScale / math.Max(dist, MinDistance))
}

type candidate struct {
	cell *Cell
	net  float64
}

// CheckForDischarge pairs every strongly positive cell with every strongly
// negative one and, for each successful draw, calls emit with the two cell
// centers and damps both cells. Pair probabilities use the charges seen
// before any damping this frame. A zero threshold disables discharge.
// It returns the number of bolts emitted.
func CheckForDischarge(g *Grid, threshold float64, rng Rand, emit func(from, to r2.Vec)) int {
	if threshold == 0 || len(g.Cells) == 0 {
		return 0
	}

	var positive, negative []candidate
	for i := range g.Cells {
		c := &g.Cells[i]
		if math.Abs(c.Net) < threshold {
			continue
		}
		if c.Net > 0 {
			positive = append(positive, candidate{cell: c, net: c.Net})
		} else {
			negative = append(negative, candidate{cell: c, net: c.Net})
		}
	}

	emitted := 0
	for _, pos := range positive {
		for _, neg := range negative {
			dist := r2.Norm(r2.Sub(neg.cell.Center, pos.cell.Center))
			if rng.Float64() >= Probability(pos.net, neg.net, dist)*EventRate {
				continue
			}
			if emit != nil {
				emit(pos.cell.Center, neg.cell.Center)
			}
			pos.cell.Net *= Damping
			neg.cell.Net *= Damping
			emitted++
		}
	}
	return emitted
}
