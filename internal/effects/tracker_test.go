package effects

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/stellar/internal/lightning"
)

var _ = Describe("Tracker", func() {
	var tr *Tracker

	BeforeEach(func() {
		tr = NewTracker()
	})

	It("grows and fades annihilation flashes", func() {
		tr.AddAnnihilation(r2.Vec{X: 3, Y: 4})
		tr.Step()

		flashes := tr.Annihilations()
		Expect(flashes).To(HaveLen(1))
		Expect(flashes[0].Center).To(Equal(r2.Vec{X: 3, Y: 4}))
		Expect(flashes[0].Radius).To(Equal(FlashStartRadius + FlashGrowth))
		Expect(flashes[0].Alpha).To(BeNumerically("~", 0.95, 1e-12))
	})

	It("removes flashes once alpha is spent", func() {
		tr.AddAnnihilation(r2.Vec{})
		steps := 0
		for tr.FlashCount() > 0 {
			tr.Step()
			steps++
			Expect(steps).To(BeNumerically("<=", 21))
		}
		Expect(steps).To(BeNumerically(">=", 20))
	})

	It("expires bolts after their lifetime", func() {
		tr.AddBolt(&lightning.Bolt{Segments: []r2.Vec{{}, {X: 1}}, Life: 3, MaxLife: 3})
		tr.Step()
		Expect(tr.Bolts()[0].Alpha()).To(BeNumerically("~", 2.0/3, 1e-12))
		tr.Step()
		Expect(tr.BoltCount()).To(Equal(1))
		tr.Step()
		Expect(tr.BoltCount()).To(Equal(0))
	})

	It("decays both collections independently", func() {
		tr.AddBolt(&lightning.Bolt{Life: lightning.Lifetime, MaxLife: lightning.Lifetime})
		tr.AddAnnihilation(r2.Vec{})
		tr.ClearAnnihilations()

		Expect(tr.FlashCount()).To(Equal(0))
		Expect(tr.BoltCount()).To(Equal(1))

		for i := 0; i < lightning.Lifetime-1; i++ {
			tr.Step()
		}
		Expect(tr.BoltCount()).To(Equal(1))
		tr.Step()
		Expect(tr.BoltCount()).To(Equal(0))
	})

	It("hands out copies", func() {
		tr.AddAnnihilation(r2.Vec{})
		tr.AddBolt(&lightning.Bolt{Segments: []r2.Vec{{}, {X: 1}}, Life: 2, MaxLife: 2})

		tr.Annihilations()[0].Alpha = -1
		tr.Bolts()[0].Segments[1].X = 99

		Expect(tr.Annihilations()[0].Alpha).To(Equal(1.0))
		Expect(tr.Bolts()[0].Segments[1].X).To(Equal(1.0))
	})
})
