package kinetics

import (
	"fmt"
	"math"

	"github.com/san-kum/polysim/internal/dynamo"
)

const (
	DefaultTemperature          = 300.0
	DefaultGelPoint             = 0.5
	DefaultDiffusionFactor      = 0.8
	DefaultInitialConcentration = 1.0
	DefaultTotalTime            = 50.0
)

// Params is one set of reaction conditions shared by every species in a run.
type Params struct {
	Temperature          float64 `json:"temperature"` // K
	GelPoint             float64 `json:"gel_point"`   // mol/L
	DiffusionFactor      float64 `json:"diffusion_factor"`
	InitialConcentration float64 `json:"initial_concentration"` // mol/L
	TotalTime            float64 `json:"total_time"`            // s
}

func DefaultParams() Params {
	return Params{
		Temperature:          DefaultTemperature,
		GelPoint:             DefaultGelPoint,
		DiffusionFactor:      DefaultDiffusionFactor,
		InitialConcentration: DefaultInitialConcentration,
		TotalTime:            DefaultTotalTime,
	}
}

// ParamNames lists the names accepted by SetParam, in display order.
var ParamNames = []string{"temperature", "gel_point", "diffusion_factor", "initial_concentration", "total_time"}

// Validate rejects conditions for which the rate law is undefined.
func (p Params) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"temperature", p.Temperature},
		{"gel_point", p.GelPoint},
		{"total_time", p.TotalTime},
	} {
		if !(f.value > 0) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be positive and finite, got %g", dynamo.ErrParameterBounds, f.name, f.value)
		}
	}
	if math.IsNaN(p.DiffusionFactor) || math.IsInf(p.DiffusionFactor, 0) {
		return fmt.Errorf("%w: diffusion_factor must be finite, got %g", dynamo.ErrParameterBounds, p.DiffusionFactor)
	}
	if !(p.InitialConcentration >= 0) || math.IsInf(p.InitialConcentration, 0) {
		return fmt.Errorf("%w: initial_concentration must be non-negative and finite, got %g", dynamo.ErrParameterBounds, p.InitialConcentration)
	}
	return nil
}

var _ dynamo.Configurable = (*Params)(nil)

func (p *Params) GetParams() map[string]float64 {
	return map[string]float64{
		"temperature":           p.Temperature,
		"gel_point":             p.GelPoint,
		"diffusion_factor":      p.DiffusionFactor,
		"initial_concentration": p.InitialConcentration,
		"total_time":            p.TotalTime,
	}
}

func (p *Params) SetParam(name string, value float64) error {
	switch name {
	case "temperature":
		p.Temperature = value
	case "gel_point":
		p.GelPoint = value
	case "diffusion_factor":
		p.DiffusionFactor = value
	case "initial_concentration":
		p.InitialConcentration = value
	case "total_time":
		p.TotalTime = value
	default:
		return fmt.Errorf("%w: %s", dynamo.ErrUnknownParam, name)
	}
	return nil
}
