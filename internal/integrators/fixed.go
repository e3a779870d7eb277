package integrators

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/polysim/internal/dynamo"
)

// Solver integrates a system across an evaluation grid.
type Solver interface {
	Solve(ctx context.Context, dyn dynamo.System, x0 dynamo.State, grid []float64) (*dynamo.Trajectory, error)
}

// FixedStep drives a single-step integrator with steps of at most Dt,
// shortening the last step before each grid point to land on it.
type FixedStep struct {
	Stepper dynamo.Integrator
	Dt      float64
}

func NewFixedStep(stepper dynamo.Integrator, dt float64) *FixedStep {
	return &FixedStep{Stepper: stepper, Dt: dt}
}

func (f *FixedStep) Solve(ctx context.Context, dyn dynamo.System, x0 dynamo.State, grid []float64) (*dynamo.Trajectory, error) {
	if !(f.Dt > 0) {
		return nil, fmt.Errorf("%w: dt must be positive, got %g", dynamo.ErrParameterBounds, f.Dt)
	}
	if err := dynamo.CheckDim(dyn, x0); err != nil {
		return nil, err
	}
	if len(grid) == 0 {
		return nil, fmt.Errorf("%w: empty evaluation grid", dynamo.ErrParameterBounds)
	}
	if !x0.IsValid() {
		return nil, dynamo.ErrInvalidState
	}

	traj := &dynamo.Trajectory{
		Times:  make([]float64, 0, len(grid)),
		States: make([]dynamo.State, 0, len(grid)),
	}

	x := x0.Clone()
	t := grid[0]
	traj.Times = append(traj.Times, t)
	traj.States = append(traj.States, x.Clone())

	for i := 1; i < len(grid); i++ {
		target := grid[i]
		if target < t {
			return traj, fmt.Errorf("%w: evaluation grid not increasing at index %d", dynamo.ErrParameterBounds, i)
		}

		n := int(math.Ceil((target - t) / f.Dt))
		if n == 0 && target > t {
			n = 1
		}
		h := (target - t) / float64(n)

		for j := 0; j < n; j++ {
			select {
			case <-ctx.Done():
				return traj, ctx.Err()
			default:
			}

			x = f.Stepper.Step(dyn, x, t+float64(j)*h, h)
			traj.StepsTaken++
			if !x.IsValid() {
				return traj, &dynamo.SimulationError{Step: traj.StepsTaken, Time: t + float64(j+1)*h, State: x.Clone(), Wrapped: dynamo.ErrInvalidState}
			}
		}

		t = target
		traj.Times = append(traj.Times, t)
		traj.States = append(traj.States, x.Clone())
	}

	return traj, nil
}
