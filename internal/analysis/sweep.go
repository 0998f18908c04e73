package analysis

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/stellar/internal/config"
	"github.com/san-kum/stellar/internal/experiment"
)

// SweepPoint holds the distinct values a series settled into for one
// parameter value.
type SweepPoint struct {
	Param  float64
	Values []float64
}

type SweepSpec struct {
	Param      string
	Min, Max   float64
	Steps      int
	Series     string
	Transient  int
	Record     int
	Resolution float64
}

// Sweep runs one experiment per parameter value. For each run the first
// Transient ticks are discarded and the remaining Record samples of the
// named series are quantized to Resolution and deduplicated.
func Sweep(ctx context.Context, base config.Config, spec SweepSpec) ([]SweepPoint, error) {
	steps := spec.Steps
	if steps < 2 {
		steps = 2
	}
	res := spec.Resolution
	if res <= 0 {
		res = 1e-3
	}
	stride := (spec.Max - spec.Min) / float64(steps-1)

	out := make([]SweepPoint, 0, steps)
	for i := 0; i < steps; i++ {
		value := spec.Min + float64(i)*stride

		cfg := base
		if err := cfg.SetParam(spec.Param, value); err != nil {
			return nil, err
		}

		result, err := experiment.Run(ctx, cfg, spec.Transient+spec.Record)
		if err != nil {
			return nil, fmt.Errorf("sweep %s=%g: %w", spec.Param, value, err)
		}
		series, ok := result.Series[spec.Series]
		if !ok {
			return nil, fmt.Errorf("unknown series: %s", spec.Series)
		}

		seen := make(map[int64]bool)
		var values []float64
		for _, v := range series[min(spec.Transient, len(series)):] {
			key := int64(math.Round(v / res))
			if !seen[key] {
				seen[key] = true
				values = append(values, v)
			}
		}
		out = append(out, SweepPoint{Param: value, Values: values})
	}
	return out, nil
}

// SweepToASCII draws parameter on x and recorded values on y.
func SweepToASCII(data []SweepPoint, width, height int) string {
	if len(data) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	minVal, maxVal := math.Inf(1), math.Inf(-1)
	for _, p := range data {
		for _, v := range p.Values {
			minVal, maxVal = math.Min(minVal, v), math.Max(maxVal, v)
		}
	}
	if math.IsInf(minVal, 1) {
		return ""
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	canvas := blankCanvas(width, height)
	for i, p := range data {
		col := min(i*width/len(data), width-1)
		for _, v := range p.Values {
			row := height - 1 - int((v-minVal)/(maxVal-minVal)*float64(height-1))
			if row >= 0 && row < height {
				canvas[row][col] = '•'
			}
		}
	}
	return render(canvas)
}
