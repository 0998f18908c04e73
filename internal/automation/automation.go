// Package automation runs scripted sequences of headless experiments
// described in YAML.
package automation

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/stellar/internal/config"
	"github.com/san-kum/stellar/internal/experiment"
)

var ErrEmptyScenario = errors.New("stellar: scenario has no steps")

// Scenario defines a scripted simulation sequence
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is one experiment. Params are applied on top of the preset
// (or the base config when Preset is empty).
type ScenarioStep struct {
	Preset  string             `yaml:"preset"`
	Ticks   int                `yaml:"ticks"`
	Seed    int64              `yaml:"seed"`
	Params  map[string]float64 `yaml:"params"`
	Metrics []string           `yaml:"metrics"`
	SaveAs  string             `yaml:"save_as"`
}

type StepResult struct {
	Label  string
	Config config.Config
	Result *experiment.Result
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(scenario.Steps) == 0 {
		return nil, ErrEmptyScenario
	}

	return &scenario, nil
}

// StepConfig resolves the config a step runs with.
func StepConfig(base config.Config, step ScenarioStep) (config.Config, error) {
	cfg := base
	if step.Preset != "" {
		p := config.GetPreset(step.Preset)
		if p == nil {
			return cfg, fmt.Errorf("unknown preset: %s", step.Preset)
		}
		cfg = *p
		cfg.Seed = base.Seed
	}
	if step.Seed != 0 {
		cfg.Seed = step.Seed
	}
	for k, v := range step.Params {
		if err := cfg.SetParam(k, v); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// RunScenario executes all steps in order, stopping at the first failure.
// Results of completed steps are returned alongside the error.
func RunScenario(ctx context.Context, scenario *Scenario, base config.Config) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))
	registry := experiment.NewRegistry()

	for i, step := range scenario.Steps {
		cfg, err := StepConfig(base, step)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		ms, err := registry.Metrics(step.Metrics)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		ticks := step.Ticks
		if ticks <= 0 {
			ticks = 500
		}

		exp := experiment.New(cfg, ticks)
		if err := exp.Setup(nil, ms); err != nil {
			return results, fmt.Errorf("step %d setup: %w", i+1, err)
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		label := step.SaveAs
		if label == "" {
			label = fmt.Sprintf("%s-step%d", scenario.Name, i+1)
		}
		results = append(results, StepResult{Label: label, Config: cfg, Result: result})
	}

	return results, nil
}
