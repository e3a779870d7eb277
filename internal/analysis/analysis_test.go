package analysis

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/polysim/internal/dynamo"
	"github.com/san-kum/polysim/internal/kinetics"
)

func TestTimeToReach(t *testing.T) {
	run := &kinetics.Run{
		Times:          []float64{0, 1, 2, 3},
		Concentrations: []float64{1.0, 0.8, 0.4, 0.2},
	}

	got, ok := TimeToReach(run, 0.5)
	if !ok {
		t.Fatal("expected crossing")
	}
	if math.Abs(got-1.75) > 1e-12 {
		t.Errorf("TimeToReach = %v, want 1.75", got)
	}

	if _, ok := TimeToReach(run, 0.1); ok {
		t.Error("run never reaches 0.1")
	}
	if got, ok := TimeToReach(run, 2); !ok || got != 0 {
		t.Errorf("already below level should report t=0, got %v %v", got, ok)
	}
	if _, ok := TimeToReach(&kinetics.Run{}, 1); ok {
		t.Error("empty run cannot cross")
	}
}

func TestConversion(t *testing.T) {
	run := &kinetics.Run{Concentrations: []float64{2, 1, 0.5}}
	if got := Conversion(run); got != 0.75 {
		t.Errorf("Conversion = %v, want 0.75", got)
	}
	if got := Conversion(&kinetics.Run{Concentrations: []float64{0, 0}}); got != 0 {
		t.Errorf("empty reactor conversion = %v, want 0", got)
	}
}

func TestGelTimeMatchesResidualDecay(t *testing.T) {
	runs, err := kinetics.NewSimulator().Run(context.Background(), kinetics.DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	pe := &runs[0]

	got, ok := GelTime(pe, 0.5)
	if !ok {
		t.Fatal("polyethylene should gel at 300 K")
	}
	// above the gel point C(t) = exp(-0.1*k*t)
	want := math.Log(2) / (kinetics.ResidualRate * pe.RateConstant)
	if math.Abs(got-want) > 0.05 {
		t.Errorf("GelTime = %.4f, want ~%.4f", got, want)
	}
}

func TestSweepOrderedByInput(t *testing.T) {
	temps := []float64{500, 250, 400, 300}
	points, err := Sweep(context.Background(), kinetics.Catalog(), kinetics.DefaultParams(), "temperature", temps, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != len(temps) {
		t.Fatalf("got %d points, want %d", len(points), len(temps))
	}
	for i, p := range points {
		if p.Value != temps[i] {
			t.Errorf("point %d value = %v, want %v", i, p.Value, temps[i])
		}
		if len(p.Runs) != 5 {
			t.Errorf("point %d has %d runs", i, len(p.Runs))
		}
		if want := kinetics.Catalog()[0].RateConstant(temps[i]); p.Runs[0].RateConstant != want {
			t.Errorf("point %d used k=%v, want %v", i, p.Runs[0].RateConstant, want)
		}
	}
}

func TestSweepErrors(t *testing.T) {
	_, err := Sweep(context.Background(), kinetics.Catalog(), kinetics.DefaultParams(), "pressure", []float64{1}, 1)
	if !errors.Is(err, dynamo.ErrUnknownParam) {
		t.Errorf("expected ErrUnknownParam, got %v", err)
	}

	_, err = Sweep(context.Background(), kinetics.Catalog(), kinetics.DefaultParams(), "temperature", []float64{300, 0}, 1)
	if !errors.Is(err, dynamo.ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds, got %v", err)
	}
}

func TestRange(t *testing.T) {
	got := Range(250, 500, 50)
	want := []float64{250, 300, 350, 400, 450, 500}
	if len(got) != len(want) {
		t.Fatalf("Range = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Range[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if got := Range(0.1, 1.0, 0.1); len(got) != 10 {
		t.Errorf("expected 10 gel points, got %d: %v", len(got), got)
	}
	gel := Range(0.1, 0.3, 0.1)
	for i, want := range []float64{0.1, 0.2, 0.3} {
		if gel[i] != want {
			t.Errorf("Range(0.1, 0.3, 0.1)[%d] = %v, want %v", i, gel[i], want)
		}
	}
	if got := Range(0.25, 1, 0.25); got[2] != 0.75 || got[3] != 1 {
		t.Errorf("Range(0.25, 1, 0.25) = %v", got)
	}

	if got := Range(5, 1, 1); len(got) != 1 || got[0] != 5 {
		t.Errorf("inverted range = %v", got)
	}
}
