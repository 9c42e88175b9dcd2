package interval

import (
	"math"

	"github.com/pkg/errors"

	"github.com/hepstats/poissoncover/pkg/numeric"
	"github.com/hepstats/poissoncover/pkg/poisson"
)

// bracketRetries bounds how often a bracket is widened before the solver
// gives up; the heuristic 2*sqrt(N) brackets can miss the root at high
// confidence levels.
const bracketRetries = 4

// SolveCentral computes the central confidence interval on the Poisson mean
// for an observed count n at confidence level cl: the probability mass above
// Upper and below Lower each equal (1-cl)/2. For n = 0 the lower bound is
// exactly 0 by convention.
func SolveCentral(n int, cl float64) (Interval, error) {
	if n < 0 {
		return Interval{}, errors.Errorf("negative observed count %d", n)
	}
	if cl <= 0 || cl >= 1 {
		return Interval{}, errors.Errorf("confidence level %g outside (0, 1)", cl)
	}
	tail := (1 - cl) / 2
	fn := float64(n)

	var lower float64
	if n > 0 {
		lo := math.Max(0.01, fn-2*math.Sqrt(fn))
		var err error
		lower, err = solveTail(func(a float64) float64 {
			return poisson.TailAbove(n, a) - tail
		}, lo, fn, shrinkLower)
		if err != nil {
			return Interval{}, errors.Wrapf(err, "lower bound for n=%d", n)
		}
	}

	hi := fn + 2*math.Sqrt(fn) + 5
	upper, err := solveTail(func(a float64) float64 {
		return poisson.TailBelow(n, a) - tail
	}, fn, hi, growUpper)
	if err != nil {
		return Interval{}, errors.Wrapf(err, "upper bound for n=%d", n)
	}

	return Interval{Lower: lower, Upper: upper}, nil
}

type widen func(lo, hi float64) (float64, float64)

func shrinkLower(lo, hi float64) (float64, float64) { return lo / 10, hi }
func growUpper(lo, hi float64) (float64, float64)   { return lo, hi*2 + 5 }

// solveTail runs the bracketed root finder, widening the bracket a bounded
// number of times when it does not straddle a sign change.
func solveTail(f func(float64) float64, lo, hi float64, w widen) (float64, error) {
	var err error
	for attempt := 0; attempt <= bracketRetries; attempt++ {
		var root float64
		root, err = numeric.BrentRoot(f, lo, hi)
		if err == nil {
			return root, nil
		}
		if !errors.Is(err, numeric.ErrNoBracket) {
			return 0, err
		}
		lo, hi = w(lo, hi)
	}
	return 0, err
}
