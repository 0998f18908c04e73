package config

var Presets = map[string]*Config{
	"calm": {
		ConnectivityRadius: 150, EdgeLength: 100, Volatility: 0.2, Speed: 1.0,
		ParticleCount: 350, PositiveRatio: 0.5, DischargeThreshold: 0,
		ChargeDecay: DefaultChargeDecay, CompactEvery: DefaultCompactEvery,
	},
	"storm": {
		ConnectivityRadius: 120, EdgeLength: 80, Volatility: 0.8, Speed: 1.5,
		ParticleCount: 500, PositiveRatio: 0.5, PolarityEnabled: true, DischargeThreshold: 4,
		ChargeDecay: DefaultChargeDecay, CompactEvery: DefaultCompactEvery,
	},
	"portrait": {
		ConnectivityRadius: 150, EdgeLength: 100, Volatility: 0.2, Speed: 1.0,
		ParticleCount: 350, PositiveRatio: 0.5, GravityWellStrength: 5, DischargeThreshold: 5,
		ChargeDecay: DefaultChargeDecay, CompactEvery: DefaultCompactEvery,
	},
	"antimatter": {
		ConnectivityRadius: 160, EdgeLength: 90, Volatility: 0.6, Speed: 1.2,
		ParticleCount: 300, PositiveRatio: 0.5, AntiparticleRatio: 0.3, PolarityEnabled: true,
		DischargeThreshold: 5, ChargeDecay: DefaultChargeDecay, CompactEvery: DefaultCompactEvery,
	},
}

// GetPreset returns a copy of the named preset sized to the default
// viewport, or nil when it does not exist.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	if cfg.Width == 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = DefaultHeight
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
