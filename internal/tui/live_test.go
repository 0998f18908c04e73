package tui

import (
	"bytes"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/stellar/internal/effects"
	"github.com/san-kum/stellar/internal/lightning"
	"github.com/san-kum/stellar/internal/particle"
	"github.com/san-kum/stellar/internal/sim"
)

func TestLiveRendererDraw(t *testing.T) {
	r := NewLiveRenderer(&bytes.Buffer{}, 30)
	snap := sim.Snapshot{
		Width:  100,
		Height: 100,
		Particles: []particle.Particle{
			particle.New(r2.Vec{X: 0, Y: 0}, particle.Positive, particle.Normal),
			particle.New(r2.Vec{X: 100, Y: 100}, particle.Negative, particle.Normal),
			particle.New(r2.Vec{X: 0, Y: 100}, particle.Negative, particle.Antiparticle),
		},
		Bolts: []*lightning.Bolt{{
			Segments: []r2.Vec{{X: 0, Y: 50}, {X: 100, Y: 50}},
		}},
		Flashes: []effects.Annihilation{{Center: r2.Vec{X: 100, Y: 0}}},
	}
	r.Draw(snap)

	rows := strings.Split(strings.TrimRight(r.String(), "\n"), "\n")
	if len(rows) != height {
		t.Fatalf("expected %d rows, got %d", height, len(rows))
	}
	tests := []struct {
		x, y int
		want rune
	}{
		{0, 0, '+'},
		{width - 1, height - 1, '-'},
		{0, height - 1, '*'},
		{width - 1, 0, 'o'},
		{width / 2, 9, '#'},
	}
	for _, tt := range tests {
		if got := []rune(rows[tt.y])[tt.x]; got != tt.want {
			t.Errorf("(%d,%d): expected %q, got %q", tt.x, tt.y, tt.want, got)
		}
	}
}

func TestLiveRendererThrottle(t *testing.T) {
	var out bytes.Buffer
	r := NewLiveRenderer(&out, 1)
	snap := sim.Snapshot{Width: 10, Height: 10}

	r.OnFrame(snap)
	first := out.Len()
	r.OnFrame(snap)
	if first == 0 {
		t.Fatal("expected the first frame to render")
	}
	if out.Len() != first {
		t.Error("second frame within the interval was not throttled")
	}
}
