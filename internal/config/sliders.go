package config

import "math"

// Slider is a bounded, stepped input range as exposed by the dashboards.
type Slider struct {
	Name    string
	Label   string
	Min     float64
	Max     float64
	Step    float64
	Default float64
}

// Clamp limits v to [Min, Max].
func (s Slider) Clamp(v float64) float64 {
	return math.Max(s.Min, math.Min(s.Max, v))
}

// Nudge moves v by steps increments, snapping to the step grid anchored at
// Min, and clamps the result.
func (s Slider) Nudge(v float64, steps int) float64 {
	n := math.Round((v-s.Min)/s.Step) + float64(steps)
	return s.Clamp(s.Min + n*s.Step)
}

// Contains reports whether v lies inside the slider range.
func (s Slider) Contains(v float64) bool {
	return v >= s.Min && v <= s.Max
}

var (
	TemperatureSlider     = Slider{Name: "temperature", Label: "Temperature (K)", Min: 250, Max: 500, Step: 10, Default: 300}
	GelPointSlider        = Slider{Name: "gel_point", Label: "Gel Point (mol/L)", Min: 0.1, Max: 1.0, Step: 0.1, Default: 0.5}
	DiffusionFactorSlider = Slider{Name: "diffusion_factor", Label: "Diffusion Factor", Min: 0.1, Max: 1.0, Step: 0.1, Default: 0.8}

	MnSlider          = Slider{Name: "mn", Label: "Mn (Number-average molecular weight)", Min: 1000, Max: 50000, Step: 1000, Default: DefaultMn}
	PDISlider         = Slider{Name: "pdi", Label: "PDI (Polydispersity index)", Min: 1.1, Max: 3.0, Step: 0.1, Default: DefaultPDI}
	DistTempSlider    = Slider{Name: "temperature", Label: "Temperature (K)", Min: 250, Max: 500, Step: 10, Default: DefaultDistTemp}
	ChainLengthSlider = Slider{Name: "length", Label: "Polymer Chain Length", Min: 50, Max: 500, Step: 50, Default: DefaultChainLength}
	BaseWeightSlider  = Slider{Name: "base_weight", Label: "Base Molecular Weight (g/mol)", Min: 1000, Max: 50000, Step: 1000, Default: DefaultBaseWeight}
	VarianceSlider    = Slider{Name: "variance", Label: "Molecular Weight Variance", Min: 100, Max: 5000, Step: 100, Default: DefaultWeightSpread}
)

// ReactionSliders are the inputs of the reaction dashboard, in display order.
var ReactionSliders = []Slider{TemperatureSlider, GelPointSlider, DiffusionFactorSlider}

// DistributionSliders are the inputs of the molecular weight distribution view.
var DistributionSliders = []Slider{MnSlider, PDISlider, DistTempSlider}

// HeatMapSliders are the inputs of the chain heat map view.
var HeatMapSliders = []Slider{ChainLengthSlider, BaseWeightSlider, VarianceSlider}

// OutOfRange returns the sliders whose value in values lies outside their
// range. Sliders with no entry in values are skipped.
func OutOfRange(sliders []Slider, values map[string]float64) []Slider {
	var out []Slider
	for _, s := range sliders {
		v, ok := values[s.Name]
		if ok && !s.Contains(v) {
			out = append(out, s)
		}
	}
	return out
}
