package kinetics

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/polysim/internal/dynamo"
	"github.com/san-kum/polysim/internal/integrators"
	"gonum.org/v1/gonum/floats"
)

// SampleCount is the number of evenly spaced samples in every run,
// including both endpoints.
const SampleCount = 100

// Run is the outcome of simulating one species under one set of Params.
type Run struct {
	Species                Species
	RateConstant           float64
	Times                  []float64
	Concentrations         []float64
	DegreeOfPolymerization float64
	Steps                  int
}

// Initial returns the first sampled concentration.
func (r *Run) Initial() float64 { return r.Concentrations[0] }

// Final returns the last sampled concentration.
func (r *Run) Final() float64 { return r.Concentrations[len(r.Concentrations)-1] }

// Simulator integrates the rate law for each species of its catalog.
// A Simulator holds solver scratch state and is not safe for concurrent use.
type Simulator struct {
	solver  integrators.Solver
	species []Species
}

// NewSimulator returns an adaptive RK45 simulator over the given species,
// or over the full catalog when none are given.
func NewSimulator(species ...Species) *Simulator {
	return NewSimulatorWith(integrators.NewRK45(), species...)
}

// NewSimulatorWith is NewSimulator with a caller-chosen solver.
func NewSimulatorWith(solver integrators.Solver, species ...Species) *Simulator {
	if len(species) == 0 {
		species = Catalog()
	}
	return &Simulator{
		solver:  solver,
		species: species,
	}
}

func (s *Simulator) Species() []Species {
	out := make([]Species, len(s.species))
	copy(out, s.species)
	return out
}

// Grid returns SampleCount evenly spaced points over [0, totalTime] with
// both endpoints exact.
func Grid(totalTime float64) []float64 {
	grid := floats.Span(make([]float64, SampleCount), 0, totalTime)
	grid[0] = 0
	grid[SampleCount-1] = totalTime
	return grid
}

// Simulate integrates dC/dt = -k*d(C)*C from c0 over [0, totalTime] and
// returns SampleCount index-aligned time and concentration samples.
func (s *Simulator) Simulate(ctx context.Context, c0, k, totalTime, gelPoint, diffusionFactor float64) (*dynamo.Trajectory, error) {
	if !(totalTime > 0) {
		return nil, fmt.Errorf("%w: total_time must be positive, got %g", dynamo.ErrParameterBounds, totalTime)
	}
	if !(gelPoint > 0) {
		return nil, fmt.Errorf("%w: gel_point must be positive, got %g", dynamo.ErrParameterBounds, gelPoint)
	}

	rxn := NewReaction(k, gelPoint, diffusionFactor)
	return s.solver.Solve(ctx, rxn, dynamo.State{c0}, Grid(totalTime))
}

// Run simulates every species of the simulator in catalog order.
func (s *Simulator) Run(ctx context.Context, p Params) ([]Run, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	runs := make([]Run, 0, len(s.species))
	for _, sp := range s.species {
		k := sp.RateConstant(p.Temperature)

		traj, err := s.Simulate(ctx, p.InitialConcentration, k, p.TotalTime, p.GelPoint, p.DiffusionFactor)
		if err != nil {
			return nil, fmt.Errorf("simulate %s: %w", sp.Name, err)
		}

		conc := traj.Component(0)
		runs = append(runs, Run{
			Species:                sp,
			RateConstant:           k,
			Times:                  traj.Times,
			Concentrations:         conc,
			DegreeOfPolymerization: DegreeOfPolymerization(conc[0], conc[len(conc)-1]),
			Steps:                  traj.StepsTaken,
		})
	}

	return runs, nil
}

// Simulate runs one integration with a fresh default simulator.
func Simulate(c0, k, totalTime, gelPoint, diffusionFactor float64) (times, concentrations []float64, err error) {
	traj, err := NewSimulator().Simulate(context.Background(), c0, k, totalTime, gelPoint, diffusionFactor)
	if err != nil {
		return nil, nil, err
	}
	return traj.Times, traj.Component(0), nil
}

// DegreeOfPolymerization estimates chain length from conversion as
// Ci / (Ci - Cf). With no conversion it is +Inf.
func DegreeOfPolymerization(ci, cf float64) float64 {
	if ci == cf {
		return math.Inf(1)
	}
	return ci / (ci - cf)
}
