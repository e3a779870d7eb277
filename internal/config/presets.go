package config

import "sort"

var Presets = map[string]ReactionConfig{
	"default": {
		Temperature: 300, GelPoint: 0.5, DiffusionFactor: 0.8, InitialConcentration: 1.0, TotalTime: 50,
	},
	"cold": {
		Temperature: 250, GelPoint: 0.5, DiffusionFactor: 0.8, InitialConcentration: 1.0, TotalTime: 50,
	},
	"hot": {
		Temperature: 500, GelPoint: 0.5, DiffusionFactor: 0.8, InitialConcentration: 1.0, TotalTime: 50,
	},
	"early-gel": {
		Temperature: 300, GelPoint: 0.9, DiffusionFactor: 1.0, InitialConcentration: 1.0, TotalTime: 50,
	},
	"late-gel": {
		Temperature: 300, GelPoint: 0.1, DiffusionFactor: 0.8, InitialConcentration: 1.0, TotalTime: 50,
	},
	"free-flow": {
		Temperature: 300, GelPoint: 0.5, DiffusionFactor: 0.1, InitialConcentration: 1.0, TotalTime: 50,
	},
}

// GetPreset returns the default config with the named reaction preset
// applied, or nil when the preset does not exist.
func GetPreset(name string) *Config {
	rc, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Reaction = rc
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
