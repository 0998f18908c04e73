package viz

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/stellar/internal/charge"
	"github.com/san-kum/stellar/internal/effects"
	"github.com/san-kum/stellar/internal/lightning"
	"github.com/san-kum/stellar/internal/particle"
	"github.com/san-kum/stellar/internal/sim"
)

func TestGlowColor(t *testing.T) {
	th := ThemePeriwinkle

	if GlowColor(1.5, th) != "" {
		t.Error("expected no glow below the threshold")
	}
	pos, neg := GlowColor(6, th), GlowColor(-6, th)
	if pos == "" || neg == "" {
		t.Fatal("expected glow above the threshold")
	}
	if pos == neg {
		t.Error("expected polarity to change the hue")
	}
	if GlowColor(100, th) != GlowColor(50, th) {
		t.Error("expected intensity to saturate")
	}
}

func TestFade(t *testing.T) {
	th := ThemePeriwinkle
	if got := Fade(th.Bolt, th.Background, 0); got != string(th.Background) {
		t.Errorf("alpha 0: expected %s, got %s", th.Background, got)
	}
	if got := Fade(th.Bolt, th.Background, 1); got != string(th.Bolt) {
		t.Errorf("alpha 1: expected %s, got %s", th.Bolt, got)
	}
	if got := Fade(th.Bolt, th.Background, 5); got != string(th.Bolt) {
		t.Errorf("alpha is clamped, got %s", got)
	}
}

func TestRendererDraw(t *testing.T) {
	c := NewCanvas(20, 10)
	r := NewRenderer(ThemePeriwinkle)

	p := particle.New(r2.Vec{X: 80, Y: 80}, particle.Positive, particle.Normal)
	snap := sim.Snapshot{
		Width:              160,
		Height:             160,
		ConnectivityRadius: 50,
		Particles:          []particle.Particle{p},
		Bolts: []*lightning.Bolt{{
			Segments: []r2.Vec{{X: 0, Y: 0}, {X: 150, Y: 0}},
			Life:     10,
			MaxLife:  15,
		}},
		Flashes: []effects.Annihilation{{Center: r2.Vec{X: 40, Y: 120}, Radius: 10, Alpha: 0.5}},
		Rows:    2,
		Cols:    2,
		Cells: []charge.Cell{
			{Net: 8}, {Net: 0}, {Net: 0}, {Net: -5},
		},
	}
	r.Draw(c, snap)

	// 40x40 dots over 160 world units
	if !isSet(c, 20, 20) {
		t.Error("particle not drawn at the center")
	}
	if !isSet(c, 0, 0) || !isSet(c, 37, 0) {
		t.Error("bolt not drawn along the top edge")
	}
	if c.Tints[0][0] == "" {
		t.Error("expected glow on the charged top-left cell")
	}
	if c.Tints[0][19] != "" {
		t.Error("expected no glow on the neutral top-right cell")
	}

	r.ShowGlow = false
	r.Draw(c, snap)
	if c.Tints[0][0] != "" {
		t.Error("glow drawn while disabled")
	}
}

func TestRendererEmptyViewport(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Set(0, 0)
	NewRenderer(ThemeMono).Draw(c, sim.Snapshot{})
	if countDots(c) != 0 {
		t.Error("expected a cleared canvas")
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("missing").Name != "periwinkle" {
		t.Error("expected fallback theme")
	}
	if NextTheme("mono").Name != Themes[0].Name {
		t.Error("expected wrap around")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names out of sync")
	}
}
