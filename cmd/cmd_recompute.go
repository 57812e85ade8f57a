package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/okian/studytrack/internal/domain/model"
	"github.com/spf13/cobra"
)

func newRecomputeCmd(c *cli) *cobra.Command {
	var minAbsR, minConf float64
	cmd := &cobra.Command{
		Use:   "recompute",
		Short: "Recompute correlations over every stored assessment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := openBackend(cmd.Context(), c.cfg)
			if err != nil {
				return err
			}
			defer b.Close()

			res, err := b.svc.Recompute(cmd.Context())
			if err != nil {
				return fmt.Errorf("recompute: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Outcome:     %s\n", res.Outcome)
			fmt.Fprintf(out, "Population:  %d (%d eligible)\n", res.Population, res.Eligible)
			fmt.Fprintf(out, "Records:     %d\n", len(res.Records))

			records, err := b.svc.Correlations(cmd.Context(), minAbsR, minConf)
			if err != nil {
				return err
			}
			printCorrelations(out, records)
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&minAbsR, "min-abs-r", -1, "only print |r| at or above this (default from config)")
	f.Float64Var(&minConf, "min-confidence", -1, "only print confidence levels at or above this (default from config)")
	return cmd
}

func printCorrelations(out io.Writer, records []model.CorrelationRecord) {
	if len(records) == 0 {
		fmt.Fprintln(out, "No correlations pass the filter.")
		return
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tTARGET\tR\tN\tCI\tP")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%+.3f\t%d\t[%.3f, %.3f]\t%.4f\n",
			r.Metric, r.Target, r.Coefficient, r.SampleSize, r.CILow, r.CIHigh, r.PValue)
	}
	_ = w.Flush()
}
