package automation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/stellar/internal/config"
)

const scenarioYAML = `name: demo
description: calm then storm
steps:
  - preset: calm
    ticks: 10
    params:
      particles: 30
  - ticks: 5
    seed: 99
    params:
      particles: 20
      volatility: 0.5
    save_as: custom
`

func base() config.Config {
	cfg := *config.DefaultConfig()
	cfg.Width, cfg.Height = 400, 300
	cfg.Seed = 1
	return cfg
}

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Name != "demo" || len(sc.Steps) != 2 {
		t.Fatalf("unexpected scenario %+v", sc)
	}
	if sc.Steps[1].Params["volatility"] != 0.5 {
		t.Errorf("params not parsed: %v", sc.Steps[1].Params)
	}

	if _, err := LoadScenario(writeScenario(t, "name: empty\n")); !errors.Is(err, ErrEmptyScenario) {
		t.Errorf("expected ErrEmptyScenario, got %v", err)
	}
	if _, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestStepConfig(t *testing.T) {
	cfg, err := StepConfig(base(), ScenarioStep{Preset: "storm", Params: map[string]float64{"particles": 12}})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ParticleCount != 12 || cfg.Seed != 1 {
		t.Errorf("got particles=%d seed=%d", cfg.ParticleCount, cfg.Seed)
	}

	if _, err := StepConfig(base(), ScenarioStep{Preset: "nope"}); err == nil {
		t.Error("expected unknown preset error")
	}
	if _, err := StepConfig(base(), ScenarioStep{Params: map[string]float64{"bogus": 1}}); err == nil {
		t.Error("expected unknown param error")
	}
}

func TestRunScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}
	results, err := RunScenario(context.Background(), sc, base())
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Label != "demo-step1" || results[1].Label != "custom" {
		t.Errorf("labels %q %q", results[0].Label, results[1].Label)
	}
	if results[0].Result.Ticks != 10 || results[1].Result.Ticks != 5 {
		t.Errorf("ticks %d %d", results[0].Result.Ticks, results[1].Result.Ticks)
	}
	if results[1].Config.Seed != 99 {
		t.Errorf("step seed not applied: %d", results[1].Config.Seed)
	}
}

func TestRunScenarioCanceled(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := RunScenario(ctx, sc, base())
	if err == nil {
		t.Fatal("expected cancellation error")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no completed steps, got %d", len(results))
	}
}
