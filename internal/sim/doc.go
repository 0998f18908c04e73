// Package sim orchestrates one frame of the particle network.
//
// A tick runs, in order: charge grid rebuild, discharge detection (which
// may spawn and scatter bolts), pairwise forces, per-particle attraction
// and integration, effect decay, and periodic compaction of dead
// particles.
//
//	eng := sim.New(*config.DefaultConfig())
//	go eng.Field().Load(attractor.Portrait())
//	for range frames {
//	    eng.Tick()
//	    render(eng.Snapshot())
//	}
//
// # Concurrency
//
// Tick and Snapshot belong to the goroutine driving the frame loop.
// Resize, SetConfig and Reset may be called from any goroutine; they are
// queued and applied together at the start of the next tick, never in the
// middle of one.
package sim
