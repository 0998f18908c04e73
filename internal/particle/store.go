package particle

import "gonum.org/v1/gonum/spatial/r2"

type Store struct {
	items []Particle
}

func NewStore(items []Particle) *Store {
	return &Store{items: items}
}

// All returns the backing slice, dead entries included. Callers mutate
// particles through it but must not append or reorder.
func (s *Store) All() []Particle { return s.items }

func (s *Store) Len() int { return len(s.items) }

func (s *Store) LiveCount() int {
	n := 0
	for i := range s.items {
		if s.items[i].Alive {
			n++
		}
	}
	return n
}

// Replace discards every particle and installs items.
func (s *Store) Replace(items []Particle) { s.items = items }

// Compact filters dead particles out in place and returns how many were
// removed.
func (s *Store) Compact() int {
	kept := s.items[:0]
	for _, p := range s.items {
		if p.Alive {
			kept = append(kept, p)
		}
	}
	removed := len(s.items) - len(kept)
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = Particle{}
	}
	s.items = kept
	return removed
}

// Live copies the live particles.
func (s *Store) Live() []Particle {
	out := make([]Particle, 0, len(s.items))
	for _, p := range s.items {
		if p.Alive {
			out = append(out, p)
		}
	}
	return out
}

// Populate creates n particles spread uniformly over a width x height
// viewport. Regular particles come first, the leading
// floor(regular*positiveRatio) of them positive, followed by
// floor(n*antiRatio) antiparticles with random polarity.
func Populate(n int, positiveRatio, antiRatio, width, height float64, rng Rand) []Particle {
	if n <= 0 {
		return []Particle{}
	}
	antiCount := int(float64(n) * antiRatio)
	if antiCount < 0 {
		antiCount = 0
	}
	if antiCount > n {
		antiCount = n
	}
	regular := n - antiCount
	positiveCount := int(float64(regular) * positiveRatio)

	items := make([]Particle, 0, n)
	for i := 0; i < regular; i++ {
		polarity := Negative
		if i < positiveCount {
			polarity = Positive
		}
		items = append(items, spawn(polarity, Normal, width, height, rng))
	}
	for i := 0; i < antiCount; i++ {
		polarity := Negative
		if rng.Float64() > 0.5 {
			polarity = Positive
		}
		items = append(items, spawn(polarity, Antiparticle, width, height, rng))
	}
	return items
}

func spawn(polarity Polarity, kind Kind, width, height float64, rng Rand) Particle {
	pos := r2.Vec{X: rng.Float64() * width, Y: rng.Float64() * height}
	p := New(pos, polarity, kind)
	p.Vel = r2.Vec{X: (rng.Float64() - 0.5) * 2, Y: (rng.Float64() - 0.5) * 2}
	return p
}
