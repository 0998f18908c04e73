// Package effects keeps the short-lived visuals of the simulation:
// annihilation flashes and active lightning bolts, each decaying on its
// own timer.
package effects

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/stellar/internal/lightning"
)

const (
	FlashStartRadius = 5.0
	// FlashMaxRadius is advisory for renderers; flashes end by alpha.
	FlashMaxRadius = 40.0
	FlashGrowth    = 2.0
	FlashFade      = 0.05
)

type Annihilation struct {
	Center r2.Vec
	Radius float64
	Alpha  float64
}

type Tracker struct {
	flashes []Annihilation
	bolts   []*lightning.Bolt
}

func NewTracker() *Tracker {
	return &Tracker{}
}

func (t *Tracker) AddAnnihilation(center r2.Vec) {
	t.flashes = append(t.flashes, Annihilation{Center: center, Radius: FlashStartRadius, Alpha: 1})
}

func (t *Tracker) AddBolt(b *lightning.Bolt) {
	t.bolts = append(t.bolts, b)
}

// Step advances every effect by one frame and drops the expired ones in
// place.
func (t *Tracker) Step() {
	flashes := t.flashes[:0]
	for _, f := range t.flashes {
		f.Radius += FlashGrowth
		f.Alpha -= FlashFade
		if f.Alpha > 0 {
			flashes = append(flashes, f)
		}
	}
	clear(t.flashes[len(flashes):])
	t.flashes = flashes

	bolts := t.bolts[:0]
	for _, b := range t.bolts {
		b.Life--
		if b.Life > 0 {
			bolts = append(bolts, b)
		}
	}
	clear(t.bolts[len(bolts):])
	t.bolts = bolts
}

// ClearAnnihilations drops every flash. Bolts keep decaying.
func (t *Tracker) ClearAnnihilations() {
	t.flashes = t.flashes[:0]
}

func (t *Tracker) Annihilations() []Annihilation {
	out := make([]Annihilation, len(t.flashes))
	copy(out, t.flashes)
	return out
}

func (t *Tracker) Bolts() []*lightning.Bolt {
	out := make([]*lightning.Bolt, len(t.bolts))
	for i, b := range t.bolts {
		out[i] = b.Clone()
	}
	return out
}

func (t *Tracker) FlashCount() int { return len(t.flashes) }
func (t *Tracker) BoltCount() int  { return len(t.bolts) }
