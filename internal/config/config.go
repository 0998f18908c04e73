package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConnectivityRadius = 150.0
	DefaultEdgeLength         = 100.0
	DefaultVolatility         = 0.2
	DefaultSpeed              = 1.0
	DefaultParticleCount      = 350
	DefaultPositiveRatio      = 0.5
	DefaultGravityWell        = 5.0
	DefaultDischargeThreshold = 5.0
	DefaultChargeDecay        = 0.02
	DefaultCompactEvery       = 100
	DefaultWidth              = 1280.0
	DefaultHeight             = 720.0
)

var ErrEmptyPath = errors.New("stellar: config path is empty")

// Config is the flat set of tunables read by every tick. Values are taken
// as-is; nothing here is validated.
type Config struct {
	ConnectivityRadius  float64 `yaml:"connectivity_radius"`
	EdgeLength          float64 `yaml:"edge_length"`
	Volatility          float64 `yaml:"volatility"`
	Speed               float64 `yaml:"speed"`
	ParticleCount       int     `yaml:"particle_count"`
	PositiveRatio       float64 `yaml:"positive_ratio"`
	AntiparticleRatio   float64 `yaml:"antiparticle_ratio"`
	GravityWellStrength float64 `yaml:"gravity_well_strength"`
	PolarityEnabled     bool    `yaml:"polarity_enabled"`
	DischargeThreshold  float64 `yaml:"discharge_threshold"`
	// ChargeDecay is reserved and never read by the discharge logic.
	ChargeDecay  float64 `yaml:"charge_decay"`
	CompactEvery int     `yaml:"compact_every"`
	Seed         int64   `yaml:"seed"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		ConnectivityRadius:  DefaultConnectivityRadius,
		EdgeLength:          DefaultEdgeLength,
		Volatility:          DefaultVolatility,
		Speed:               DefaultSpeed,
		ParticleCount:       DefaultParticleCount,
		PositiveRatio:       DefaultPositiveRatio,
		AntiparticleRatio:   0,
		GravityWellStrength: DefaultGravityWell,
		PolarityEnabled:     false,
		DischargeThreshold:  DefaultDischargeThreshold,
		ChargeDecay:         DefaultChargeDecay,
		CompactEvery:        DefaultCompactEvery,
		Width:               DefaultWidth,
		Height:              DefaultHeight,
	}
}

func Load(path string) (*Config, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	if path == "" {
		return ErrEmptyPath
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// NeedsRepopulation reports whether moving from old to next changes the
// population shape. Any other change applies on the next tick in place.
func NeedsRepopulation(old, next Config) bool {
	return old.ParticleCount != next.ParticleCount ||
		old.PositiveRatio != next.PositiveRatio ||
		old.AntiparticleRatio != next.AntiparticleRatio
}

// Tunables lists the params the interactive front-ends adjust, in
// display order.
var Tunables = []string{"connectivity", "edge_length", "volatility", "speed", "particles", "positive", "antiparticles", "gravity_well", "discharge"}

// Params exposes the runtime-tunable fields by name, for UI bindings.
func (c *Config) Params() map[string]float64 {
	polarity := 0.0
	if c.PolarityEnabled {
		polarity = 1
	}
	return map[string]float64{
		"connectivity":  c.ConnectivityRadius,
		"edge_length":   c.EdgeLength,
		"volatility":    c.Volatility,
		"speed":         c.Speed,
		"particles":     float64(c.ParticleCount),
		"positive":      c.PositiveRatio,
		"antiparticles": c.AntiparticleRatio,
		"gravity_well":  c.GravityWellStrength,
		"polarity":      polarity,
		"discharge":     c.DischargeThreshold,
	}
}

func (c *Config) SetParam(name string, value float64) error {
	switch name {
	case "connectivity":
		c.ConnectivityRadius = value
	case "edge_length":
		c.EdgeLength = value
	case "volatility":
		c.Volatility = value
	case "speed":
		c.Speed = value
	case "particles":
		c.ParticleCount = int(value)
	case "positive":
		c.PositiveRatio = value
	case "antiparticles":
		c.AntiparticleRatio = value
	case "gravity_well":
		c.GravityWellStrength = value
	case "polarity":
		c.PolarityEnabled = value != 0
	case "discharge":
		c.DischargeThreshold = value
	default:
		return fmt.Errorf("unknown parameter: %s", name)
	}
	return nil
}

// Adjust scales a param by factor. Integer params move by at least one
// and a zero param grows from floor.
func (c *Config) Adjust(name string, factor, floor float64) error {
	val, ok := c.Params()[name]
	if !ok {
		return fmt.Errorf("unknown parameter: %s", name)
	}
	next := val * factor
	switch {
	case name == "particles":
		step := math.Max(1, math.Round(math.Abs(next-val)))
		if factor > 1 {
			next = val + step
		} else {
			next = math.Max(0, val-step)
		}
	case val == 0 && factor > 1:
		next = floor
	}
	return c.SetParam(name, next)
}
