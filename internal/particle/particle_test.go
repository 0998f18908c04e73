package particle

import (
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestNew_DerivedAttributes(t *testing.T) {
	tests := []struct {
		name     string
		polarity Polarity
		kind     Kind
		radius   float64
		mass     float64
	}{
		{"positive", Positive, Normal, 4, 1.5},
		{"negative", Negative, Normal, 3, 1},
		{"anti positive", Positive, Antiparticle, 5, 0.8},
		{"anti negative", Negative, Antiparticle, 5, 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(r2.Vec{X: 1, Y: 2}, tt.polarity, tt.kind)
			if p.Radius != tt.radius || p.Mass != tt.mass {
				t.Errorf("got radius %f mass %f, want %f %f", p.Radius, p.Mass, tt.radius, tt.mass)
			}
			if !p.Alive {
				t.Error("new particle should be alive")
			}
			if p.Mass <= 0 {
				t.Error("mass must be positive")
			}
		})
	}
}

func TestCanAnnihilate(t *testing.T) {
	pos := New(r2.Vec{}, Positive, Normal)
	neg := New(r2.Vec{}, Negative, Normal)
	anti := New(r2.Vec{}, Positive, Antiparticle)
	anti2 := New(r2.Vec{}, Negative, Antiparticle)

	if !CanAnnihilate(&pos, &anti) || !CanAnnihilate(&anti2, &neg) {
		t.Error("normal x antiparticle should annihilate")
	}
	if CanAnnihilate(&pos, &neg) {
		t.Error("normal x normal must not annihilate")
	}
	if CanAnnihilate(&anti, &anti2) {
		t.Error("antiparticle x antiparticle must not annihilate")
	}
}

func TestPopulate(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	items := Populate(100, 0.25, 0.2, 800, 600, rng)

	if len(items) != 100 {
		t.Fatalf("expected 100 particles, got %d", len(items))
	}

	var positive, negative, anti int
	for i, p := range items {
		if p.Pos.X < 0 || p.Pos.X >= 800 || p.Pos.Y < 0 || p.Pos.Y >= 600 {
			t.Errorf("particle %d outside viewport: %v", i, p.Pos)
		}
		if p.Vel.X < -1 || p.Vel.X >= 1 || p.Vel.Y < -1 || p.Vel.Y >= 1 {
			t.Errorf("particle %d initial velocity out of range: %v", i, p.Vel)
		}
		switch {
		case p.Kind == Antiparticle:
			anti++
			if i < 80 {
				t.Errorf("antiparticle at index %d, expected after regular particles", i)
			}
		case p.Polarity == Positive:
			positive++
		default:
			negative++
		}
	}

	if anti != 20 {
		t.Errorf("expected 20 antiparticles, got %d", anti)
	}
	if positive != 20 || negative != 60 {
		t.Errorf("expected 20 positive 60 negative, got %d %d", positive, negative)
	}
}

func TestPopulate_Empty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{0, -5} {
		items := Populate(n, 0.5, 0, 100, 100, rng)
		if items == nil || len(items) != 0 {
			t.Errorf("Populate(%d) should return an empty, non-nil slice", n)
		}
	}
}

func TestStore_Compact(t *testing.T) {
	items := []Particle{
		New(r2.Vec{X: 1}, Positive, Normal),
		New(r2.Vec{X: 2}, Negative, Normal),
		New(r2.Vec{X: 3}, Positive, Antiparticle),
		New(r2.Vec{X: 4}, Negative, Normal),
	}
	items[1].Alive = false
	items[2].Alive = false

	st := NewStore(items)
	if st.LiveCount() != 2 {
		t.Errorf("expected 2 live, got %d", st.LiveCount())
	}

	removed := st.Compact()
	if removed != 2 {
		t.Errorf("expected 2 removed, got %d", removed)
	}
	if st.Len() != 2 {
		t.Fatalf("expected 2 remaining, got %d", st.Len())
	}
	if st.All()[0].Pos.X != 1 || st.All()[1].Pos.X != 4 {
		t.Error("compaction must preserve order of live particles")
	}
	if st.Compact() != 0 {
		t.Error("second compaction should remove nothing")
	}
}

func TestStore_LiveIsCopy(t *testing.T) {
	st := NewStore([]Particle{New(r2.Vec{X: 1}, Positive, Normal)})
	live := st.Live()
	live[0].Pos.X = 99
	if st.All()[0].Pos.X != 1 {
		t.Error("Live must return a copy")
	}
}
