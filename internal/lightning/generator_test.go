package lightning

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/stellar/internal/particle"
)

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

var _ = Describe("Generator", func() {
	var rng *rand.Rand

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(42))
	})

	Describe("Generate", func() {
		It("always starts and ends exactly at the inputs", func() {
			gen := NewGenerator(rng)
			for i := 0; i < 200; i++ {
				from := r2.Vec{X: rng.Float64() * 1000, Y: rng.Float64() * 1000}
				to := r2.Vec{X: rng.Float64() * 1000, Y: rng.Float64() * 1000}
				b := gen.Generate(from, to)
				Expect(b.Segments[0]).To(Equal(from))
				Expect(b.Segments[len(b.Segments)-1]).To(Equal(to))
			}
		})

		It("subdivides proportionally to distance with a floor", func() {
			gen := NewGenerator(rng)
			Expect(gen.Generate(r2.Vec{}, r2.Vec{X: 40}).Segments).To(HaveLen(MinSegments + 1))
			Expect(gen.Generate(r2.Vec{}, r2.Vec{X: 600}).Segments).To(HaveLen(21))
		})

		It("guards zero-length bolts", func() {
			p := r2.Vec{X: 12, Y: 34}
			b := NewGenerator(rng).Generate(p, p)
			Expect(b.Segments).To(Equal([]r2.Vec{p, p}))
			Expect(b.Branches).To(BeEmpty())
			for _, s := range b.Segments {
				Expect(math.IsNaN(s.X) || math.IsNaN(s.Y)).To(BeFalse())
			}
		})

		It("keeps jitter inside the tent envelope", func() {
			from, to := r2.Vec{}, r2.Vec{X: 300}
			b := NewGenerator(rng).Generate(from, to)
			n := len(b.Segments) - 1
			for i, s := range b.Segments {
				progress := float64(i) / float64(n)
				Expect(s.X).To(BeNumerically("~", 300*progress, 1e-9))
				Expect(math.Abs(s.Y)).To(BeNumerically("<=", Amplitude/2*Envelope(progress)+1e-9))
			}
		})

		It("starts with a full lifetime", func() {
			b := NewGenerator(rng).Generate(r2.Vec{}, r2.Vec{X: 100, Y: 100})
			Expect(b.Life).To(Equal(Lifetime))
			Expect(b.Alpha()).To(Equal(1.0))
		})

		It("branches only from interior points and stays bounded", func() {
			gen := NewGenerator(fixedRand(0))
			b := gen.Generate(r2.Vec{}, r2.Vec{X: 300})
			interior := SegmentCount(300) - 3
			Expect(b.Branches).To(HaveLen(interior * MaxBranchCount(BranchMinLength, BranchDepth)))
			Expect(len(b.Branches)).To(BeNumerically("<=", MaxBranches(300)))
		})

		It("never exceeds the branch bound for random draws", func() {
			gen := NewGenerator(rng)
			for i := 0; i < 200; i++ {
				to := r2.Vec{X: rng.Float64() * 900, Y: rng.Float64() * 900}
				b := gen.Generate(r2.Vec{}, to)
				Expect(len(b.Branches)).To(BeNumerically("<=", MaxBranches(r2.Norm(to))))
			}
		})
	})

	Describe("Grow", func() {
		It("adds nothing once depth is exhausted", func() {
			gen := NewGenerator(fixedRand(0))
			for _, depth := range []int{0, -1, -10} {
				b := &Bolt{}
				gen.Grow(b, r2.Vec{}, 0, 80, depth)
				Expect(b.Branches).To(BeEmpty())
			}
		})

		It("reaches exactly the bound when every draw branches", func() {
			gen := NewGenerator(fixedRand(0))
			for depth := 1; depth <= 5; depth++ {
				b := &Bolt{}
				gen.Grow(b, r2.Vec{}, 0, 80, depth)
				Expect(b.Branches).To(HaveLen(MaxBranchCount(80, depth)))
			}
		})

		It("does not recurse when no draw succeeds", func() {
			b := &Bolt{}
			NewGenerator(fixedRand(0.99)).Grow(b, r2.Vec{X: 5, Y: 5}, 0, 80, 4)
			Expect(b.Branches).To(HaveLen(1))
			Expect(b.Branches[0]).To(HaveLen(5))
			Expect(b.Branches[0][0]).To(Equal(r2.Vec{X: 5, Y: 5}))
		})
	})
})

var _ = Describe("Scatter", func() {
	It("pushes nearby live particles away, scaled by proximity", func() {
		b := &Bolt{Segments: []r2.Vec{{X: 100, Y: 100}}}
		ps := []particle.Particle{
			particle.New(r2.Vec{X: 125, Y: 100}, particle.Positive, particle.Normal),
			particle.New(r2.Vec{X: 100, Y: 90}, particle.Negative, particle.Normal),
			particle.New(r2.Vec{X: 160, Y: 100}, particle.Negative, particle.Normal),
			particle.New(r2.Vec{X: 100, Y: 100}, particle.Negative, particle.Normal),
			particle.New(r2.Vec{X: 110, Y: 100}, particle.Negative, particle.Normal),
		}
		ps[4].Alive = false

		Scatter(b, ps)

		Expect(ps[0].Vel.X).To(BeNumerically("~", 4, 1e-12))
		Expect(ps[0].Vel.Y).To(BeNumerically("~", 0, 1e-12))
		Expect(ps[1].Vel.Y).To(BeNumerically("~", -6.4, 1e-12))
		Expect(ps[2].Vel).To(Equal(r2.Vec{}))
		Expect(ps[3].Vel).To(Equal(r2.Vec{}))
		Expect(ps[4].Vel).To(Equal(r2.Vec{}))
	})
})

var _ = Describe("Bolt", func() {
	It("fades with its lifetime", func() {
		b := &Bolt{Life: 5, MaxLife: Lifetime}
		Expect(b.Alpha()).To(BeNumerically("~", 1.0/3, 1e-12))
		Expect(b.Alive()).To(BeTrue())
		b.Life = 0
		Expect(b.Alive()).To(BeFalse())
		Expect((&Bolt{}).Alpha()).To(Equal(0.0))
	})

	It("clones geometry deeply", func() {
		b := NewGenerator(fixedRand(0)).Generate(r2.Vec{}, r2.Vec{X: 300})
		c := b.Clone()
		c.Segments[1].X = -1
		c.Branches[0][0].X = -1
		Expect(b.Segments[1].X).NotTo(Equal(-1.0))
		Expect(b.Branches[0][0].X).NotTo(Equal(-1.0))
	})
})
