package integrators

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/polysim/internal/dynamo"
)

func linspace(a, b float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = a + (b-a)*float64(i)/float64(n-1)
	}
	return out
}

func TestRK45_Step(t *testing.T) {
	integrator := NewRK45()
	dyn := &firstOrderDecay{k: 2}

	x := dynamo.State{1.0}
	dt := 0.01
	for i := 0; i < 100; i++ {
		x = integrator.Step(dyn, x, float64(i)*dt, dt)
	}

	if !x.IsValid() {
		t.Fatal("RK45 produced invalid state")
	}
	if want := math.Exp(-2); math.Abs(x[0]-want) > 1e-10 {
		t.Errorf("got %.12f, want %.12f", x[0], want)
	}
}

func TestRK45_AdaptiveStep(t *testing.T) {
	integrator := NewRK45()
	dyn := &firstOrderDecay{k: 1}

	x, newDt, err := integrator.StepAdaptive(dyn, dynamo.State{1.0}, 0, 0.01, 1e-6)
	if err != nil {
		t.Fatalf("StepAdaptive returned error: %v", err)
	}
	if !x.IsValid() {
		t.Error("StepAdaptive produced invalid state")
	}
	if newDt <= 0.01 {
		t.Errorf("expected step to grow after an easy step, got %f", newDt)
	}
}

func TestRK45_AdaptiveStepRejects(t *testing.T) {
	integrator := NewRK45()
	dyn := &firstOrderDecay{k: 50}
	x0 := dynamo.State{1.0}

	x, newDt, err := integrator.StepAdaptive(dyn, x0, 0, 1.0, 1e-6)
	if !errors.Is(err, dynamo.ErrStepRejected) {
		t.Fatalf("expected rejection, got %v", err)
	}
	if x[0] != x0[0] {
		t.Error("rejected step must leave the state unchanged")
	}
	if newDt >= 1.0 {
		t.Errorf("rejected step must shrink dt, got %f", newDt)
	}
}

func TestRK45_SolveHitsGrid(t *testing.T) {
	integrator := NewRK45()
	dyn := &firstOrderDecay{k: 0.3}
	grid := linspace(0, 10, 100)

	traj, err := integrator.Solve(context.Background(), dyn, dynamo.State{2.0}, grid)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(traj.Times) != 100 || len(traj.States) != 100 {
		t.Fatalf("got %d times, %d states", len(traj.Times), len(traj.States))
	}
	for i, tm := range traj.Times {
		if tm != grid[i] {
			t.Fatalf("time[%d] = %v, want %v", i, tm, grid[i])
		}
		want := 2.0 * math.Exp(-0.3*tm)
		if rel := math.Abs(traj.States[i][0]-want) / want; rel > 1e-6 {
			t.Errorf("t=%.3f: rel error %e", tm, rel)
		}
	}
	if traj.States[0][0] != 2.0 {
		t.Errorf("first sample = %v, want initial state", traj.States[0][0])
	}
}

func TestRK45_SolveStiffDecay(t *testing.T) {
	integrator := NewRK45()
	dyn := &firstOrderDecay{k: 250}

	traj, err := integrator.Solve(context.Background(), dyn, dynamo.State{1.0}, linspace(0, 50, 100))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	last := traj.States[len(traj.States)-1][0]
	if math.Abs(last) > 1e-6 {
		t.Errorf("expected full decay, final = %e", last)
	}
	if traj.Rejected == 0 {
		t.Log("no rejected steps on a fast decay")
	}
}

func TestRK45_SolveErrors(t *testing.T) {
	integrator := NewRK45()
	dyn := &firstOrderDecay{k: 1}

	if _, err := integrator.Solve(context.Background(), dyn, dynamo.State{1, 2}, linspace(0, 1, 5)); !errors.Is(err, dynamo.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
	if _, err := integrator.Solve(context.Background(), dyn, dynamo.State{1}, nil); !errors.Is(err, dynamo.ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds, got %v", err)
	}
	if _, err := integrator.Solve(context.Background(), dyn, dynamo.State{1}, []float64{0, 2, 1}); !errors.Is(err, dynamo.ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds for decreasing grid, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := integrator.Solve(ctx, dyn, dynamo.State{1}, linspace(0, 1, 5)); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRK45_SolveStepBudget(t *testing.T) {
	integrator := NewRK45()
	integrator.MaxSteps = 3
	dyn := &firstOrderDecay{k: 100}

	_, err := integrator.Solve(context.Background(), dyn, dynamo.State{1}, linspace(0, 100, 100))
	if !errors.Is(err, dynamo.ErrUnstable) {
		t.Fatalf("expected ErrUnstable, got %v", err)
	}
	var simErr *dynamo.SimulationError
	if !errors.As(err, &simErr) {
		t.Fatal("expected *dynamo.SimulationError")
	}
}
