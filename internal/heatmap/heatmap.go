// Package heatmap generates per-segment molecular weights along a polymer
// chain and maps them onto a diverging color ramp.
package heatmap

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

var ErrInvalidChain = errors.New("heatmap: invalid chain parameters")

// Chain describes the segments to generate. Variance is used as the
// standard deviation of the per-segment normal distribution.
type Chain struct {
	Length     int
	BaseWeight float64
	Variance   float64
}

func (c Chain) Validate() error {
	if c.Length <= 0 {
		return fmt.Errorf("%w: length must be positive, got %d", ErrInvalidChain, c.Length)
	}
	if math.IsNaN(c.BaseWeight) || math.IsInf(c.BaseWeight, 0) {
		return fmt.Errorf("%w: base weight must be finite", ErrInvalidChain)
	}
	if !(c.Variance >= 0) || math.IsInf(c.Variance, 0) {
		return fmt.Errorf("%w: variance must be non-negative, got %g", ErrInvalidChain, c.Variance)
	}
	return nil
}

// Weights draws one molecular weight per segment, clipped at zero.
func (c Chain) Weights(src rand.Source) ([]float64, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	n := distuv.Normal{Mu: c.BaseWeight, Sigma: c.Variance, Src: src}
	w := make([]float64, c.Length)
	for i := range w {
		w[i] = math.Max(n.Rand(), 0)
	}
	return w, nil
}

// Normalize rescales w onto [0, 1] by its min and max. A flat input maps
// to 0 everywhere, the low end of the ramp.
func Normalize(w []float64) []float64 {
	out := make([]float64, len(w))
	if len(w) == 0 {
		return out
	}
	lo, hi := floats.Min(w), floats.Max(w)
	for i, v := range w {
		if hi == lo {
			out[i] = 0
			continue
		}
		out[i] = (v - lo) / (hi - lo)
	}
	return out
}
