// Package analysis inspects recorded run series.
//
//   - [PowerSpectrum]: magnitude spectrum of a series, mean removed
//   - [DominantPeriod]: strongest oscillation period, in ticks
//   - [NewPhasePortrait]: one series plotted against another
//   - [Sweep]: a parameter swept across runs, recording the distinct
//     late-run values of one series
//
// # Periodicity
//
// Discharge storms tend to recur as charge rebuilds after damping:
//
//	period, ok := analysis.DominantPeriod(series["bolts"])
//	if ok {
//	    fmt.Printf("storms every %.0f ticks\n", period)
//	}
package analysis
