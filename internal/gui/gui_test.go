package gui

import (
	"testing"

	"github.com/san-kum/stellar/internal/audio"
	"github.com/san-kum/stellar/internal/config"
	"github.com/san-kum/stellar/internal/sim"
	"github.com/san-kum/stellar/internal/viz"
)

func testApp(t *testing.T) *App {
	t.Helper()
	cfg := *config.DefaultConfig()
	cfg.Width, cfg.Height = 400, 300
	cfg.ParticleCount = 30
	cfg.Seed = 3
	return NewApp(sim.New(cfg), "test", nil)
}

func TestPaletteGlow(t *testing.T) {
	p := NewPalette(viz.ThemePeriwinkle)
	if _, ok := p.Glow(viz.GlowThreshold); ok {
		t.Error("threshold charge should not glow")
	}
	weak, ok := p.Glow(3)
	if !ok {
		t.Fatal("expected glow at net 3")
	}
	strong, _ := p.Glow(-50)
	if strong.A <= weak.A {
		t.Errorf("stronger charge should glow brighter: %d <= %d", strong.A, weak.A)
	}
	if limit := uint8(viz.GlowMax*255 + 1); strong.A > limit {
		t.Errorf("glow alpha %d above cap %d", strong.A, limit)
	}
}

func TestPaletteFromTheme(t *testing.T) {
	p := NewPalette(viz.ThemePeriwinkle)
	if p.Positive.R != 0xcc || p.Positive.G != 0xcc || p.Positive.B != 0xff {
		t.Errorf("positive = %+v, want #ccccff", p.Positive)
	}
	if c := withAlpha(p.Positive, 0.5); c.A != 128 {
		t.Errorf("half alpha = %d", c.A)
	}
	if c := withAlpha(p.Positive, 2); c.A != 255 {
		t.Errorf("alpha should clamp, got %d", c.A)
	}
}

func TestAppApply(t *testing.T) {
	a := testApp(t)

	a.apply(actPause)
	if a.Running {
		t.Error("pause should stop the app")
	}
	a.apply(actPolarity)
	a.Engine.Tick()
	if !a.Engine.Config().PolarityEnabled {
		t.Error("polarity toggle should reach the engine")
	}

	a.ParamSel = 4
	a.apply(actIncrease)
	a.Engine.Tick()
	if got := a.Engine.Config().ParticleCount; got != 32 {
		t.Errorf("particles = %d, want 32", got)
	}

	a.apply(actNextParam)
	if a.ParamSel != 5 {
		t.Errorf("ParamSel = %d, want 5", a.ParamSel)
	}

	theme := a.Palette.Name
	a.apply(actTheme)
	if a.Palette.Name == theme {
		t.Error("theme should cycle")
	}

	a.apply(actPreset)
	if a.Title == "test" || a.Cfg.Seed != 3 {
		t.Errorf("preset should switch title and keep seed, got %q seed %d", a.Title, a.Cfg.Seed)
	}

	a.apply(actQuit)
	if !a.quit {
		t.Error("quit not recorded")
	}
}

func TestAppStepTelemetry(t *testing.T) {
	a := testApp(t)
	a.Audio = audio.NewProcessor(1)
	for i := 0; i < maxTelemetry+20; i++ {
		a.step()
	}
	if len(a.Telemetry) != maxTelemetry {
		t.Errorf("telemetry length %d, want %d", len(a.Telemetry), maxTelemetry)
	}
	if a.Audio.Active() {
		t.Error("processor should not be active without Start")
	}
}
