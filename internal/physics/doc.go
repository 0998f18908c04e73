// Package physics moves particles: pairwise spring-like forces with
// polarity and annihilation rules, and per-frame integration with
// jitter, damping, a speed clamp and wall bounces.
//
// [ApplyForces] is O(n²) over the live particles and mutates velocities
// in place. [Integrate] then advances one particle for one frame:
//
//	n := physics.ApplyForces(ps, cfg, tracker.AddAnnihilation)
//	for i := range ps {
//	    physics.Integrate(&ps[i], cfg, width, height, rng)
//	}
package physics
