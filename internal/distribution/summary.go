package distribution

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Moments are the averages measured from a molecular-weight sample.
type Moments struct {
	Mn  float64 // number average
	Mw  float64 // weight average
	PDI float64 // Mw/Mn
}

// Measure computes Mn = sum(M)/N and Mw = sum(M^2)/sum(M).
func Measure(weights []float64) Moments {
	if len(weights) == 0 {
		return Moments{}
	}
	sum := floats.Sum(weights)
	m := Moments{
		Mn: stat.Mean(weights, nil),
		Mw: floats.Dot(weights, weights) / sum,
	}
	if m.Mn > 0 {
		m.PDI = m.Mw / m.Mn
	}
	return m
}

// Histogram is a density-normalized histogram: the bar areas sum to one.
type Histogram struct {
	Edges   []float64
	Density []float64
}

// NewHistogram bins x into bins equal-width bins spanning [min, max].
func NewHistogram(x []float64, bins int) (*Histogram, error) {
	if bins <= 0 {
		return nil, fmt.Errorf("%w: bins must be positive, got %d", ErrInvalidParams, bins)
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("%w: empty sample", ErrInvalidParams)
	}

	sorted := slices.Clone(x)
	slices.Sort(sorted)
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if hi == lo {
		hi = lo + 1
	}

	edges := floats.Span(make([]float64, bins+1), lo, hi)
	// stat.Histogram excludes the upper divider
	dividers := slices.Clone(edges)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(make([]float64, bins), dividers, sorted, nil)

	width := (hi - lo) / float64(bins)
	density := make([]float64, bins)
	n := float64(len(x))
	for i, c := range counts {
		density[i] = c / (n * width)
	}

	return &Histogram{Edges: edges, Density: density}, nil
}

// Centers returns the midpoint of every bin.
func (h *Histogram) Centers() []float64 {
	out := make([]float64, len(h.Density))
	for i := range out {
		out[i] = (h.Edges[i] + h.Edges[i+1]) / 2
	}
	return out
}
