package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/stellar/internal/metrics"
)

type Registry struct {
	metrics map[string]func() metrics.Metric
}

func NewRegistry() *Registry {
	r := &Registry{metrics: make(map[string]func() metrics.Metric)}

	r.metrics["live"] = func() metrics.Metric { return metrics.NewLiveCount() }
	r.metrics["annihilations"] = func() metrics.Metric { return metrics.NewAnnihilations() }
	r.metrics["bolts"] = func() metrics.Metric { return metrics.NewBolts() }
	r.metrics["peak_charge"] = func() metrics.Metric { return metrics.NewPeakCharge() }
	r.metrics["kinetic_energy"] = func() metrics.Metric { return metrics.NewKineticEnergy() }

	return r
}

// Metrics builds fresh metrics by name. No names means all of them.
func (r *Registry) Metrics(names []string) ([]metrics.Metric, error) {
	if len(names) == 0 {
		names = r.ListMetrics()
	}
	out := make([]metrics.Metric, 0, len(names))
	for _, name := range names {
		factory, ok := r.metrics[name]
		if !ok {
			return nil, fmt.Errorf("unknown metric: %s", name)
		}
		out = append(out, factory())
	}
	return out, nil
}

func (r *Registry) ListMetrics() []string {
	names := make([]string, 0, len(r.metrics))
	for name := range r.metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
