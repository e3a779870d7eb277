package kinetics

import (
	"math"

	"github.com/san-kum/polysim/internal/dynamo"
)

// ResidualRate is the diffusion multiplier at and beyond the gel point.
const ResidualRate = 0.1

// Reaction is the rate law dC/dt = -k * d(C) * C as a dynamo.System.
type Reaction struct {
	RateConstant    float64
	GelPoint        float64
	DiffusionFactor float64
}

func NewReaction(k, gelPoint, diffusionFactor float64) *Reaction {
	return &Reaction{
		RateConstant:    k,
		GelPoint:        gelPoint,
		DiffusionFactor: diffusionFactor,
	}
}

func (r *Reaction) StateDim() int { return 1 }

// DiffusionLimit returns the multiplier d(C). Below the gel point it decays
// linearly with concentration and is clamped at zero; from the gel point
// on it is the constant ResidualRate.
func (r *Reaction) DiffusionLimit(c float64) float64 {
	if c < r.GelPoint {
		return math.Max(1-r.DiffusionFactor*(c/r.GelPoint), 0)
	}
	return ResidualRate
}

func (r *Reaction) Derive(x dynamo.State, t float64) dynamo.State {
	c := x[0]
	return dynamo.State{-r.RateConstant * r.DiffusionLimit(c) * c}
}
