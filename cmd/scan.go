package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hepstats/poissoncover/cmd/flags"
	v1 "github.com/hepstats/poissoncover/pkg/apis/config/v1"
	"github.com/hepstats/poissoncover/pkg/coverage"
	"github.com/hepstats/poissoncover/pkg/interval"
	"github.com/hepstats/poissoncover/pkg/poisson"
)

type scanResult struct {
	Construction string         `json:"construction"`
	Mode         string         `json:"mode"`
	Curve        coverage.Curve `json:"curve"`
}

func newScanCommand() *cobra.Command {
	f := flags.NewStudyFlags()
	var output, format string

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Evaluate coverage curves over a grid of true means",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.Config(cmd.Flags())
			if err != nil {
				return err
			}
			results, err := runScan(cfg)
			if err != nil {
				return err
			}
			return writeResults(results, output, format)
		},
	}
	f.BindFlags(cmd.Flags())
	cmd.Flags().StringVar(&output, "output", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&format, "format", "csv", "Output format (csv or json)")
	return cmd
}

func runScan(cfg *v1.StudyConfig) ([]scanResult, error) {
	means := coverage.Grid(cfg.MeanMin, cfg.MeanMax, cfg.GridPoints)
	sampler := poisson.NewSampler(cfg.Seed)

	results := make([]scanResult, 0, 2*len(cfg.Constructions))
	for _, construction := range cfg.Constructions {
		table, err := buildTable(construction, cfg)
		if err != nil {
			return nil, err
		}
		ev := &coverage.Evaluator{Table: table}

		exact, err := ev.Exact(means)
		if err != nil {
			return nil, errors.Wrapf(err, "exact coverage of %s intervals", construction)
		}
		simulated, err := ev.Simulate(means, cfg.Repetitions, sampler)
		if err != nil {
			return nil, errors.Wrapf(err, "simulated coverage of %s intervals", construction)
		}

		logSummary(construction, "exact", exact, cfg.ConfidenceLevel)
		logSummary(construction, "simulated", simulated, cfg.ConfidenceLevel)
		results = append(results,
			scanResult{Construction: construction, Mode: "exact", Curve: exact},
			scanResult{Construction: construction, Mode: "simulated", Curve: simulated})
	}
	return results, nil
}

func buildTable(construction string, cfg *v1.StudyConfig) (interval.Table, error) {
	switch construction {
	case v1.ConstructionCentral:
		return interval.BuildCentral(cfg.MaxCount, cfg.ConfidenceLevel)
	case v1.ConstructionSqrt:
		return interval.BuildSqrt(cfg.MaxCount), nil
	case v1.ConstructionCorrectedSqrt:
		return interval.BuildCorrectedSqrt(cfg.MaxCount), nil
	}
	return nil, errors.Errorf("unknown construction %q", construction)
}

func logSummary(construction, mode string, curve coverage.Curve, cl float64) {
	s, err := coverage.Summarize(curve, cl)
	if err != nil {
		log.WithError(err).Warn("could not summarize coverage curve")
		return
	}
	log.WithFields(log.Fields{
		"construction": construction,
		"mode":         mode,
		"min":          fmt.Sprintf("%.4f", s.Min),
		"mean":         fmt.Sprintf("%.4f", s.Mean),
		"belowTarget":  fmt.Sprintf("%.2f", s.BelowTarget),
	}).Info("coverage summary")
}

func writeResults(results []scanResult, output, format string) error {
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return errors.Wrap(err, "could not create output file")
		}
		defer f.Close()
		w = f
	}
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(results), "could not encode results")
	case "csv":
		return writeCSV(w, results)
	}
	return errors.Errorf("unknown format %q", format)
}

func writeCSV(w io.Writer, results []scanResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"construction", "mode", "mean", "probability", "err"}); err != nil {
		return errors.Wrap(err, "could not write csv header")
	}
	for _, r := range results {
		for _, pt := range r.Curve {
			record := []string{
				r.Construction,
				r.Mode,
				strconv.FormatFloat(pt.Mean, 'g', -1, 64),
				strconv.FormatFloat(pt.Probability, 'g', -1, 64),
				strconv.FormatFloat(pt.Err, 'g', -1, 64),
			}
			if err := cw.Write(record); err != nil {
				return errors.Wrap(err, "could not write csv record")
			}
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "could not flush csv")
}

func init() {
	rootCmd.AddCommand(newScanCommand())
}
