package coverage

import (
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// Summary describes a coverage curve against a target confidence level.
type Summary struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
	// BelowTarget is the fraction of grid points whose coverage falls under
	// the target confidence level.
	BelowTarget float64 `json:"below_target"`
}

func Summarize(curve Curve, target float64) (Summary, error) {
	if len(curve) == 0 {
		return Summary{}, errors.New("cannot summarize an empty curve")
	}
	probs := make([]float64, len(curve))
	below := 0
	for i, pt := range curve {
		probs[i] = pt.Probability
		if pt.Probability < target {
			below++
		}
	}
	min, err := stats.Min(probs)
	if err != nil {
		return Summary{}, errors.Wrap(err, "min coverage")
	}
	max, err := stats.Max(probs)
	if err != nil {
		return Summary{}, errors.Wrap(err, "max coverage")
	}
	mean, err := stats.Mean(probs)
	if err != nil {
		return Summary{}, errors.Wrap(err, "mean coverage")
	}
	return Summary{
		Min:         min,
		Max:         max,
		Mean:        mean,
		BelowTarget: float64(below) / float64(len(curve)),
	}, nil
}
