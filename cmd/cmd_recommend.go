package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRecommendCmd(c *cli) *cobra.Command {
	var flags struct {
		userID       string
		assessmentID string
	}
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "List a user's recommendations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := openBackend(cmd.Context(), c.cfg)
			if err != nil {
				return err
			}
			defer b.Close()

			recs, err := b.svc.Recommendations(cmd.Context(), flags.userID, flags.assessmentID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(recs) == 0 {
				fmt.Fprintln(out, "No recommendations.")
				return nil
			}
			for _, r := range recs {
				fmt.Fprintf(out, "%d. %s\n   metric=%s strength=%.2f status=%s id=%s\n",
					r.PriorityRank, r.Text, r.SupportingMetric, r.Strength, r.Status, r.ID)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.userID, "user", "", "user ID (required)")
	f.StringVar(&flags.assessmentID, "assessment", "", "assessment ID (default: the user's latest)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
