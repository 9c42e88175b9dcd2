package interval

import (
	"math"

	"github.com/pkg/errors"
)

// BuildCentral builds the central interval table for observed counts
// [0, nmax) at confidence level cl. Root finding is deterministic given the
// fixed brackets, so identical inputs yield identical tables.
func BuildCentral(nmax int, cl float64) (Table, error) {
	if nmax <= 0 {
		return nil, errors.Errorf("table size %d must be positive", nmax)
	}
	t := make(Table, nmax)
	for n := 0; n < nmax; n++ {
		iv, err := SolveCentral(n, cl)
		if err != nil {
			return nil, errors.Wrapf(err, "building central table at cl=%g", cl)
		}
		t[n] = iv
	}
	return t, nil
}

// BuildSqrt builds the naive (N-sqrt(N), N+sqrt(N)) baseline table. Bounds
// are left unclamped; for N=0 the interval degenerates to the point 0 and
// covers nothing under strict containment.
func BuildSqrt(nmax int) Table {
	t := make(Table, nmax)
	for n := range t {
		fn := float64(n)
		r := math.Sqrt(fn)
		t[n] = Interval{Lower: fn - r, Upper: fn + r}
	}
	return t
}

// BuildCorrectedSqrt builds the sqrt baseline with an e^(-N) correction on
// the upper bound, which restores coverage at small counts.
func BuildCorrectedSqrt(nmax int) Table {
	t := make(Table, nmax)
	for n := range t {
		fn := float64(n)
		r := math.Sqrt(fn)
		t[n] = Interval{Lower: fn - r, Upper: fn + r + math.Exp(-fn)}
	}
	return t
}
