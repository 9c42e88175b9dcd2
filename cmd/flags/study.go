package flags

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	v1 "github.com/hepstats/poissoncover/pkg/apis/config/v1"
)

// StudyFlags holds the coverage-study parameters plus the path of an
// optional YAML file supplying defaults for them.
type StudyFlags struct {
	Path string

	MaxCount        int
	ConfidenceLevel float64
	MeanMin         float64
	MeanMax         float64
	GridPoints      int
	Repetitions     int
	Seed            uint64
	Constructions   []string
}

func NewStudyFlags() *StudyFlags {
	return &StudyFlags{
		MaxCount:        175,
		ConfidenceLevel: 0.683,
		MeanMin:         0,
		MeanMax:         10,
		GridPoints:      100,
		Repetitions:     1000,
		Seed:            1,
		Constructions: []string{
			v1.ConstructionCentral,
			v1.ConstructionSqrt,
			v1.ConstructionCorrectedSqrt,
		},
	}
}

func (f *StudyFlags) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&f.Path, "config", f.Path,
		"YAML file with study parameters; flags set on the command line take precedence")
	fs.IntVar(&f.MaxCount, "nmax", f.MaxCount,
		"Number of tabulated observed counts")
	fs.Float64Var(&f.ConfidenceLevel, "cl", f.ConfidenceLevel,
		"Target confidence level")
	fs.Float64Var(&f.MeanMin, "amin", f.MeanMin,
		"Lower end of the true-mean grid")
	fs.Float64Var(&f.MeanMax, "amax", f.MeanMax,
		"Upper end of the true-mean grid")
	fs.IntVar(&f.GridPoints, "grid-points", f.GridPoints,
		"Number of grid points between amin and amax")
	fs.IntVar(&f.Repetitions, "nrep", f.Repetitions,
		"Poisson draws per grid point in simulation mode")
	fs.Uint64Var(&f.Seed, "seed", f.Seed,
		"Seed for the simulation random source")
	fs.StringSliceVar(&f.Constructions, "constructions", f.Constructions,
		"Interval constructions to evaluate (central, sqrt, correctedSqrt)")
}

// Config resolves the final study configuration: YAML file values are
// applied first, then any flag set explicitly on the command line wins.
func (f *StudyFlags) Config(fs *pflag.FlagSet) (*v1.StudyConfig, error) {
	cfg := &v1.StudyConfig{
		MaxCount:        f.MaxCount,
		ConfidenceLevel: f.ConfidenceLevel,
		MeanMin:         f.MeanMin,
		MeanMax:         f.MeanMax,
		GridPoints:      f.GridPoints,
		Repetitions:     f.Repetitions,
		Seed:            f.Seed,
		Constructions:   f.Constructions,
	}

	if f.Path != "" {
		data, err := os.ReadFile(f.Path)
		if err != nil {
			return nil, errors.Wrap(err, "could not load config")
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "could not unmarshal config")
		}
		if fs.Changed("nmax") {
			cfg.MaxCount = f.MaxCount
		}
		if fs.Changed("cl") {
			cfg.ConfidenceLevel = f.ConfidenceLevel
		}
		if fs.Changed("amin") {
			cfg.MeanMin = f.MeanMin
		}
		if fs.Changed("amax") {
			cfg.MeanMax = f.MeanMax
		}
		if fs.Changed("grid-points") {
			cfg.GridPoints = f.GridPoints
		}
		if fs.Changed("nrep") {
			cfg.Repetitions = f.Repetitions
		}
		if fs.Changed("seed") {
			cfg.Seed = f.Seed
		}
		if fs.Changed("constructions") {
			cfg.Constructions = f.Constructions
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid study configuration")
	}
	return cfg, nil
}
