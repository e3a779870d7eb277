package integrators

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/polysim/internal/dynamo"
)

// Solve integrates dyn from grid[0] with adaptive steps and reports the
// state at every grid point. Steps are clipped so each point is landed on
// exactly, so the internal step size never leaks into the sampling.
func (r *RK45) Solve(ctx context.Context, dyn dynamo.System, x0 dynamo.State, grid []float64) (*dynamo.Trajectory, error) {
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

	dt := r.initialStep(dyn, x, t, grid[len(grid)-1]-t)
	attempts := 0

	for i := 1; i < len(grid); i++ {
		target := grid[i]
		if target < t {
			return traj, fmt.Errorf("%w: evaluation grid not increasing at index %d", dynamo.ErrParameterBounds, i)
		}

		for t < target {
			select {
			case <-ctx.Done():
				return traj, ctx.Err()
			default:
			}

			if attempts >= r.MaxSteps {
				return traj, &dynamo.SimulationError{Step: attempts, Time: t, State: x.Clone(), Wrapped: dynamo.ErrUnstable}
			}
			attempts++

			h := dt
			last := false
			if t+h >= target {
				h = target - t
				last = true
			}

			xNew, dtNext, err := r.StepAdaptive(dyn, x, t, h, r.RelTol)
			if errors.Is(err, dynamo.ErrStepRejected) {
				traj.Rejected++
				dt = dtNext
				if dt < r.MinStep {
					return traj, &dynamo.SimulationError{Step: attempts, Time: t, State: x.Clone(), Wrapped: dynamo.ErrStepTooSmall}
				}
				continue
			}
			if err != nil {
				return traj, &dynamo.SimulationError{Step: attempts, Time: t, State: x.Clone(), Wrapped: err}
			}

			x = xNew
			traj.StepsTaken++
			if last {
				t = target
				// a clipped step says nothing about the step the dynamics allow
				if dtNext > dt {
					dt = dtNext
				}
			} else {
				t += h
				dt = dtNext
			}
		}

		traj.Times = append(traj.Times, t)
		traj.States = append(traj.States, x.Clone())
	}

	return traj, nil
}

// initialStep follows the usual h0 = 0.01 * |x| / |f(x)| heuristic,
// clamped to the integration span.
func (r *RK45) initialStep(dyn dynamo.System, x dynamo.State, t, span float64) float64 {
	if span <= 0 {
		return r.MinStep
	}
	d0 := x.Norm()
	d1 := dyn.Derive(x, t).Norm()

	h := 1e-6
	if d0 > 1e-5 && d1 > 1e-5 {
		h = 0.01 * d0 / d1
	}
	return math.Max(r.MinStep, math.Min(h, span))
}
