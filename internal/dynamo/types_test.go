package dynamo

import (
	"errors"
	"math"
	"testing"
)

func TestState_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		state State
		valid bool
	}{
		{"empty", State{}, true},
		{"normal", State{1.0, 2.0, 3.0}, true},
		{"zeros", State{0.0, 0.0}, true},
		{"with NaN", State{1.0, math.NaN()}, false},
		{"with +Inf", State{1.0, math.Inf(1)}, false},
		{"with -Inf", State{1.0, math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestState_Norm(t *testing.T) {
	tests := []struct {
		state    State
		expected float64
	}{
		{State{3, 4}, 5.0},
		{State{1, 0}, 1.0},
		{State{0, 0}, 0.0},
		{State{1, 1, 1, 1}, 2.0},
	}

	for _, tt := range tests {
		if got := tt.state.Norm(); math.Abs(got-tt.expected) > 1e-10 {
			t.Errorf("Norm(%v) = %v, want %v", tt.state, got, tt.expected)
		}
	}
}

func TestState_CloneIndependent(t *testing.T) {
	a := State{1, 2}
	b := a.Clone()
	b[0] = 99
	if a[0] != 1 {
		t.Error("Clone shares backing array")
	}
}

type scalarDecay struct{}

func (scalarDecay) Derive(x State, t float64) State { return State{-x[0]} }
func (scalarDecay) StateDim() int                   { return 1 }

func TestCheckDim(t *testing.T) {
	if err := CheckDim(scalarDecay{}, State{1}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := CheckDim(scalarDecay{}, State{1, 2}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestTrajectory_Component(t *testing.T) {
	tr := &Trajectory{
		Times:  []float64{0, 1},
		States: []State{{1, 10}, {2, 20}},
	}
	got := tr.Component(1)
	if len(got) != 2 || got[0] != 10 || got[1] != 20 {
		t.Errorf("Component(1) = %v", got)
	}
}

func TestSimulationError_Unwrap(t *testing.T) {
	err := &SimulationError{Step: 3, Time: 1.5, Wrapped: ErrStepTooSmall}
	if !errors.Is(err, ErrStepTooSmall) {
		t.Error("SimulationError does not unwrap to its cause")
	}
	if err.Error() != ErrStepTooSmall.Error() {
		t.Errorf("Error() = %q", err.Error())
	}
}
