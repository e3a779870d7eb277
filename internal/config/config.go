package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/polysim/internal/kinetics"
)

const (
	DefaultMn           = 10000.0
	DefaultPDI          = 1.5
	DefaultDistTemp     = 300.0
	DefaultDistSamples  = 1000
	DefaultDistBins     = 50
	DefaultChainLength  = 100
	DefaultBaseWeight   = 10000.0
	DefaultWeightSpread = 1000.0
	DefaultTheme        = "cyberpunk"
)

type Config struct {
	Reaction     ReactionConfig     `yaml:"reaction"`
	Distribution DistributionConfig `yaml:"distribution"`
	HeatMap      HeatMapConfig      `yaml:"heatmap"`
	Theme        string             `yaml:"theme"`
}

type ReactionConfig struct {
	Temperature          float64  `yaml:"temperature"`
	GelPoint             float64  `yaml:"gel_point"`
	DiffusionFactor      float64  `yaml:"diffusion_factor"`
	InitialConcentration float64  `yaml:"initial_concentration"`
	TotalTime            float64  `yaml:"total_time"`
	Species              []string `yaml:"species,omitempty"`
}

type DistributionConfig struct {
	Mn          float64 `yaml:"mn"`
	PDI         float64 `yaml:"pdi"`
	Temperature float64 `yaml:"temperature"`
	Samples     int     `yaml:"samples"`
	Bins        int     `yaml:"bins"`
	Seed        uint64  `yaml:"seed"`
}

type HeatMapConfig struct {
	Length     int     `yaml:"length"`
	BaseWeight float64 `yaml:"base_weight"`
	Variance   float64 `yaml:"variance"`
	Seed       uint64  `yaml:"seed"`
}

func DefaultConfig() *Config {
	p := kinetics.DefaultParams()
	return &Config{
		Reaction: ReactionConfig{
			Temperature:          p.Temperature,
			GelPoint:             p.GelPoint,
			DiffusionFactor:      p.DiffusionFactor,
			InitialConcentration: p.InitialConcentration,
			TotalTime:            p.TotalTime,
		},
		Distribution: DistributionConfig{
			Mn:          DefaultMn,
			PDI:         DefaultPDI,
			Temperature: DefaultDistTemp,
			Samples:     DefaultDistSamples,
			Bins:        DefaultDistBins,
		},
		HeatMap: HeatMapConfig{
			Length:     DefaultChainLength,
			BaseWeight: DefaultBaseWeight,
			Variance:   DefaultWeightSpread,
		},
		Theme: DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params converts the reaction section into simulation parameters.
func (r ReactionConfig) Params() kinetics.Params {
	return kinetics.Params{
		Temperature:          r.Temperature,
		GelPoint:             r.GelPoint,
		DiffusionFactor:      r.DiffusionFactor,
		InitialConcentration: r.InitialConcentration,
		TotalTime:            r.TotalTime,
	}
}

// SelectedSpecies resolves the configured species names against the
// catalog. An empty list selects the whole catalog.
func (r ReactionConfig) SelectedSpecies() ([]kinetics.Species, error) {
	if len(r.Species) == 0 {
		return kinetics.Catalog(), nil
	}
	out := make([]kinetics.Species, 0, len(r.Species))
	for _, name := range r.Species {
		s, ok := kinetics.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown species: %s", name)
		}
		out = append(out, s)
	}
	return out, nil
}

// Values keys the distribution inputs by slider name.
func (d DistributionConfig) Values() map[string]float64 {
	return map[string]float64{
		"mn":          d.Mn,
		"pdi":         d.PDI,
		"temperature": d.Temperature,
	}
}

// Values keys the heat map inputs by slider name.
func (h HeatMapConfig) Values() map[string]float64 {
	return map[string]float64{
		"length":      float64(h.Length),
		"base_weight": h.BaseWeight,
		"variance":    h.Variance,
	}
}
