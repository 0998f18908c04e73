package lightning

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

type Generator struct {
	rng Rand
}

func NewGenerator(rng Rand) *Generator {
	return &Generator{rng: rng}
}

// SegmentCount is the number of main-path segments for a bolt of length dist.
func SegmentCount(dist float64) int {
	n := int(math.Floor(dist / SegmentSpacing))
	if n < MinSegments {
		return MinSegments
	}
	return n
}

// Envelope is the jitter scale at progress t in [0,1]: 0 at the ends, 1 at
// the midpoint.
func Envelope(t float64) float64 {
	return 1 - math.Abs(2*t-1)
}

// Generate builds a bolt from from to to. The first and last points are
// exactly the inputs.
func (g *Generator) Generate(from, to r2.Vec) *Bolt {
	b := &Bolt{Life: Lifetime, MaxLife: Lifetime}

	delta := r2.Sub(to, from)
	dist := r2.Norm(delta)
	if dist == 0 {
		b.Segments = []r2.Vec{from, to}
		return b
	}

	n := SegmentCount(dist)
	perp := r2.Vec{X: -delta.Y / dist, Y: delta.X / dist}
	heading := math.Atan2(delta.Y, delta.X)

	b.Segments = make([]r2.Vec, 0, n+1)
	b.Segments = append(b.Segments, from)
	for i := 1; i < n; i++ {
		progress := float64(i) / float64(n)
		base := r2.Add(from, r2.Scale(progress, delta))
		offset := (g.rng.Float64() - 0.5) * Amplitude * Envelope(progress)
		pt := r2.Add(base, r2.Scale(offset, perp))
		b.Segments = append(b.Segments, pt)

		if g.rng.Float64() < BranchChance && i > 1 && i < n-1 {
			angle := heading + (g.rng.Float64()-0.5)*BranchSpread
			length := BranchMinLength + g.rng.Float64()*BranchExtra
			g.Grow(b, pt, angle, length, BranchDepth)
		}
	}
	b.Segments = append(b.Segments, to)
	return b
}

// Grow appends a branch starting at start to b, recursing into
// sub-branches with half the length and one less depth. Depth <= 0 adds
// nothing.
func (g *Generator) Grow(b *Bolt, start r2.Vec, angle, length float64, depth int) {
	if depth <= 0 {
		return
	}

	steps := branchSteps(length)
	stepLen := length / float64(steps)

	branch := make([]r2.Vec, 0, steps+1)
	pt := start
	branch = append(branch, pt)
	for i := 1; i <= steps; i++ {
		heading := angle + (g.rng.Float64()-0.5)*BranchWiggle
		pt = r2.Add(pt, r2.Vec{X: math.Cos(heading) * stepLen, Y: math.Sin(heading) * stepLen})
		branch = append(branch, pt)

		if g.rng.Float64() < SubBranchChance && depth > 1 {
			sub := heading + (g.rng.Float64()-0.5)*SubBranchSpread
			g.Grow(b, pt, sub, length*0.5, depth-1)
		}
	}
	b.Branches = append(b.Branches, branch)
}

func branchSteps(length float64) int {
	n := int(math.Floor(length / BranchStep))
	if n < 2 {
		return 2
	}
	return n
}

// MaxBranchCount bounds the number of branch paths a single Grow call can
// produce for length and depth.
func MaxBranchCount(length float64, depth int) int {
	if depth <= 0 {
		return 0
	}
	if depth == 1 {
		return 1
	}
	return 1 + branchSteps(length)*MaxBranchCount(length*0.5, depth-1)
}

// MaxBranches bounds the total branch paths of a bolt over dist.
func MaxBranches(dist float64) int {
	interior := SegmentCount(dist) - 3
	if interior < 0 {
		interior = 0
	}
	return interior * MaxBranchCount(BranchMinLength+BranchExtra, BranchDepth)
}
