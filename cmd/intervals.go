package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hepstats/poissoncover/cmd/flags"
)

func newIntervalsCommand() *cobra.Command {
	f := flags.NewStudyFlags()

	cmd := &cobra.Command{
		Use:   "intervals",
		Short: "Print the interval tables for counts [0, nmax)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.Config(cmd.Flags())
			if err != nil {
				return err
			}
			for _, construction := range cfg.Constructions {
				table, err := buildTable(construction, cfg)
				if err != nil {
					return err
				}
				fmt.Printf("# %s (cl=%g)\n", construction, cfg.ConfidenceLevel)
				for n, iv := range table {
					fmt.Printf("%5d  %12.6f  %12.6f\n", n, iv.Lower, iv.Upper)
				}
			}
			return nil
		},
	}
	f.BindFlags(cmd.Flags())
	return cmd
}

func init() {
	rootCmd.AddCommand(newIntervalsCommand())
}
