package coverage

import (
	"math"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/hepstats/poissoncover/pkg/interval"
	"github.com/hepstats/poissoncover/pkg/poisson"
)

var (
	// ErrNoInterval is returned in exact mode when no tabulated interval
	// contains the mean.
	ErrNoInterval = errors.New("mean lies in no tabulated interval")
	// ErrRunGap is returned when the counts covering a mean are not
	// contiguous; exact mode depends on that nesting property.
	ErrRunGap = errors.New("interval containment is not contiguous")
	// ErrRunTruncated is returned when the covering run reaches the end of
	// the table, so its true upper end is unknown. The table is too small
	// for the requested mean range.
	ErrRunTruncated = errors.New("containment run reaches the end of the table")
	// ErrCountRange is returned in strict simulation mode when a draw
	// exceeds the table range.
	ErrCountRange = errors.New("simulated count exceeds the interval table")
)

// Evaluator computes coverage curves for one interval table.
type Evaluator struct {
	Table interval.Table

	// StrictRange turns a simulated count outside the table into a hard
	// error instead of a logged miss.
	StrictRange bool
}

// Exact returns the exact coverage curve on the given means: for each mean
// the Poisson probability of all counts whose interval strictly contains it,
// summed through the incomplete gamma tail identity. Err is zero on every
// point since there is no sampling.
func (e *Evaluator) Exact(means []float64) (Curve, error) {
	curve := make(Curve, 0, len(means))
	for _, mean := range means {
		p, err := e.exactAt(mean)
		if err != nil {
			return nil, err
		}
		curve = append(curve, Point{Mean: mean, Probability: p})
	}
	return curve, nil
}

func (e *Evaluator) exactAt(mean float64) (float64, error) {
	first, last := -1, -1
	for n, iv := range e.Table {
		if !iv.Contains(mean) {
			continue
		}
		if first < 0 {
			first = n
		} else if n != last+1 {
			return 0, errors.Wrapf(ErrRunGap, "counts %d and %d both cover mean %g", last, n, mean)
		}
		last = n
	}
	if first < 0 {
		return 0, errors.Wrapf(ErrNoInterval, "mean %g, table size %d", mean, len(e.Table))
	}
	if last == len(e.Table)-1 {
		return 0, errors.Wrapf(ErrRunTruncated, "mean %g, table size %d", mean, len(e.Table))
	}
	return poisson.TailAbove(first, mean) - poisson.TailAbove(last+1, mean), nil
}

// Simulate returns the Monte Carlo coverage curve with nRep Poisson draws
// per mean. Unless StrictRange is set, a draw whose count has no table entry
// is kept in the fixed denominator and counts as a miss; such draws are
// reported once per grid point as a warning.
func (e *Evaluator) Simulate(means []float64, nRep int, sampler *poisson.Sampler) (Curve, error) {
	if nRep <= 0 {
		return nil, errors.Errorf("repetition count %d must be positive", nRep)
	}
	curve := make(Curve, 0, len(means))
	for _, mean := range means {
		covered, overflow := 0, 0
		for i := 0; i < nRep; i++ {
			n := sampler.Draw(mean)
			if n >= len(e.Table) {
				if e.StrictRange {
					return nil, errors.Wrapf(ErrCountRange, "count %d at mean %g, table size %d", n, mean, len(e.Table))
				}
				overflow++
				continue
			}
			if e.Table[n].Contains(mean) {
				covered++
			}
		}
		if overflow > 0 {
			log.WithFields(log.Fields{
				"mean":      mean,
				"draws":     overflow,
				"tableSize": len(e.Table),
			}).Warn("no interval for simulated counts, counted as misses")
		}
		p := float64(covered) / float64(nRep)
		dp := math.Sqrt(float64(nRep)*p*(1-p)) / float64(nRep)
		curve = append(curve, Point{Mean: mean, Probability: p, Err: dp})
	}
	return curve, nil
}
