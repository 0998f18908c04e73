// Package metrics summarizes a run from the snapshots it produces. Each
// metric folds one snapshot at a time into a single value.
package metrics

import "github.com/san-kum/stellar/internal/sim"

type Metric interface {
	Name() string
	Observe(s sim.Snapshot)
	Value() float64
	Reset()
}

// Default returns one fresh instance of every metric.
func Default() []Metric {
	return []Metric{
		NewLiveCount(),
		NewAnnihilations(),
		NewBolts(),
		NewPeakCharge(),
		NewKineticEnergy(),
	}
}
