package analysis

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/polysim/internal/kinetics"
)

type SweepPoint struct {
	Value float64
	Runs  []kinetics.Run
}

// Sweep runs every species once per value of the named parameter, with
// the remaining parameters taken from base. At most workers simulations
// run at a time; workers <= 0 uses GOMAXPROCS.
func Sweep(ctx context.Context, species []kinetics.Species, base kinetics.Params, param string, values []float64, workers int) ([]SweepPoint, error) {
	probe := base
	if err := probe.SetParam(param, base.GetParams()[param]); err != nil {
		return nil, err
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	points := make([]SweepPoint, len(values))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, v := range values {
		p := base
		_ = p.SetParam(param, v)

		g.Go(func() error {
			runs, err := kinetics.NewSimulator(species...).Run(ctx, p)
			if err != nil {
				return fmt.Errorf("%s=%g: %w", param, v, err)
			}
			points[i] = SweepPoint{Value: v, Runs: runs}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

// Range returns from, from+step, ... up to and including to, tolerating
// floating-point drift in the step count.
func Range(from, to, step float64) []float64 {
	if step <= 0 || to < from {
		return []float64{from}
	}
	n := int(math.Floor((to-from)/step+1e-6)) + 1
	scale := math.Pow(10, float64(max(decimals(from), decimals(step))))
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Round((from+float64(i)*step)*scale) / scale
	}
	return out
}

// decimals counts the fractional digits in the shortest decimal form of v,
// capped at 12.
func decimals(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return 0
	}
	return min(len(s)-dot-1, 12)
}
