package metrics

import "github.com/san-kum/stellar/internal/sim"

// LiveCount reports the live population at the last observed tick.
type LiveCount struct {
	live int
}

func NewLiveCount() *LiveCount { return &LiveCount{} }

func (l *LiveCount) Name() string           { return "live" }
func (l *LiveCount) Observe(s sim.Snapshot) { l.live = s.Live }
func (l *LiveCount) Value() float64         { return float64(l.live) }
func (l *LiveCount) Reset()                 { l.live = 0 }

type Annihilations struct {
	total int
}

func NewAnnihilations() *Annihilations { return &Annihilations{} }

func (a *Annihilations) Name() string           { return "annihilations" }
func (a *Annihilations) Observe(s sim.Snapshot) { a.total += s.Annihilations }
func (a *Annihilations) Value() float64         { return float64(a.total) }
func (a *Annihilations) Reset()                 { a.total = 0 }

type Bolts struct {
	total int
}

func NewBolts() *Bolts { return &Bolts{} }

func (b *Bolts) Name() string           { return "bolts" }
func (b *Bolts) Observe(s sim.Snapshot) { b.total += s.Stats.Bolts }
func (b *Bolts) Value() float64         { return float64(b.total) }
func (b *Bolts) Reset()                 { b.total = 0 }
