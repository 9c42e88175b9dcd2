package v1

import (
	"github.com/pkg/errors"
)

// Names of the interval constructions a study can evaluate.
const (
	ConstructionCentral       = "central"
	ConstructionSqrt          = "sqrt"
	ConstructionCorrectedSqrt = "correctedSqrt"
)

// StudyConfig holds the parameters of one coverage study.
type StudyConfig struct {
	// MaxCount is the number of tabulated observed counts; intervals are
	// built for counts [0, maxCount).
	MaxCount int `yaml:"maxCount"`

	// ConfidenceLevel is the target coverage of the central construction.
	ConfidenceLevel float64 `yaml:"confidenceLevel"`

	// MeanMin and MeanMax bound the grid of true means. Grid points are
	// sampled at mid-bin positions, so the endpoints themselves are never
	// evaluated.
	MeanMin float64 `yaml:"meanMin"`
	MeanMax float64 `yaml:"meanMax"`

	// GridPoints is the number of means on the grid.
	GridPoints int `yaml:"gridPoints"`

	// Repetitions is the number of Poisson draws per grid point in
	// simulation mode.
	Repetitions int `yaml:"repetitions"`

	// Seed fixes the random source so simulated curves are reproducible.
	Seed uint64 `yaml:"seed,omitempty"`

	// Constructions selects the interval tables to evaluate.
	Constructions []string `yaml:"constructions,omitempty"`
}

func (c *StudyConfig) Validate() error {
	switch {
	case c.MaxCount <= 0:
		return errors.Errorf("maxCount %d must be positive", c.MaxCount)
	case c.ConfidenceLevel <= 0 || c.ConfidenceLevel >= 1:
		return errors.Errorf("confidenceLevel %g outside (0, 1)", c.ConfidenceLevel)
	case c.MeanMin < 0:
		return errors.Errorf("meanMin %g must not be negative", c.MeanMin)
	case c.MeanMax <= c.MeanMin:
		return errors.Errorf("meanMax %g must exceed meanMin %g", c.MeanMax, c.MeanMin)
	case c.MeanMax >= float64(c.MaxCount):
		// Exact evaluation needs the covering run to end inside the table.
		return errors.Errorf("maxCount %d does not span meanMax %g", c.MaxCount, c.MeanMax)
	case c.GridPoints <= 0:
		return errors.Errorf("gridPoints %d must be positive", c.GridPoints)
	case c.Repetitions <= 0:
		return errors.Errorf("repetitions %d must be positive", c.Repetitions)
	case len(c.Constructions) == 0:
		return errors.New("at least one construction is required")
	}
	for _, name := range c.Constructions {
		switch name {
		case ConstructionCentral, ConstructionSqrt, ConstructionCorrectedSqrt:
		default:
			return errors.Errorf("unknown construction %q", name)
		}
	}
	return nil
}
