package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCareerCmd(c *cli) *cobra.Command {
	var flags struct {
		userID string
		career string
		limit  int
		sim    map[string]string
		list   bool
	}
	cmd := &cobra.Command{
		Use:   "career",
		Short: "Rank subjects for a career against a user's latest assessment",
		Example: "  studytrack career --user u1 --career software-developer --limit 5\n" +
			"  studytrack career --user u1 --sim study_hours=10,focus_score=90",
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := openBackend(cmd.Context(), c.cfg)
			if err != nil {
				return err
			}
			defer b.Close()
			out := cmd.OutOrStdout()

			if flags.list {
				for _, cr := range b.svc.Careers() {
					fmt.Fprintf(out, "%-26s %s\n", cr.Slug(), cr.Name)
				}
				return nil
			}
			if flags.userID == "" {
				return errors.New("--user is required")
			}

			subjects, err := b.svc.CareerAligned(cmd.Context(), flags.userID, flags.career, flags.sim, flags.limit)
			if err != nil {
				return err
			}
			if len(subjects) == 0 {
				fmt.Fprintln(out, "No subjects match the user's course.")
				return nil
			}
			for i, s := range subjects {
				fmt.Fprintf(out, "%d. %s  weakness=%.4f", i+1, s.Subject.Name, s.WeaknessScore)
				if len(flags.sim) > 0 {
					fmt.Fprintf(out, " baseline=%.4f gap_closed=%.2f%%", s.BaselineWeaknessScore, s.GapClosurePercent)
				}
				fmt.Fprintf(out, "\n   %s; skills: %s\n", s.CareerRelevanceContext, strings.Join(s.SupportingSkills, ", "))
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.userID, "user", "", "user ID")
	f.StringVar(&flags.career, "career", "", "career name or slug (default: the user's profile career)")
	f.IntVar(&flags.limit, "limit", 0, "number of subjects (default from config)")
	f.StringToStringVar(&flags.sim, "sim", nil, "simulated metric values, e.g. study_hours=10")
	f.BoolVar(&flags.list, "list", false, "list the catalog careers and exit")
	return cmd
}
