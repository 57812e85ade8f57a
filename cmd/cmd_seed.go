package main

import (
	"fmt"
	"runtime"
	"sort"

	"github.com/okian/studytrack/internal/seed"
	"github.com/spf13/cobra"
)

func newSeedCmd(c *cli) *cobra.Command {
	var flags struct {
		population int
		random     int64
		workers    int
	}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Store a synthetic population and recompute correlations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("population") {
				flags.population = c.cfg.SeedPopulation
			}
			if !cmd.Flags().Changed("random") {
				flags.random = c.cfg.SeedRandom
			}

			students, err := seed.Generate(seed.Config{Population: flags.population, Random: flags.random})
			if err != nil {
				return err
			}
			b, err := openBackend(cmd.Context(), c.cfg)
			if err != nil {
				return err
			}
			defer b.Close()

			if err := seed.Write(cmd.Context(), b.store, students, flags.workers); err != nil {
				return err
			}
			res, err := b.svc.Recompute(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			counts := make(map[string]int)
			for _, s := range students {
				counts[s.Archetype]++
			}
			fmt.Fprintf(out, "Seeded %d students (random=%d)\n", len(students), flags.random)
			names := make([]string, 0, len(counts))
			for name := range counts {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(out, "  %-14s %d\n", name, counts[name])
			}
			fmt.Fprintf(out, "Outcome: %s, %d correlations\n", res.Outcome, len(res.Records))
			records, err := b.svc.Correlations(cmd.Context(), -1, -1)
			if err != nil {
				return err
			}
			printCorrelations(out, records)
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&flags.population, "population", 0, "number of students (default from config)")
	f.Int64Var(&flags.random, "random", 0, "generator seed (default from config)")
	f.IntVar(&flags.workers, "workers", runtime.NumCPU(), "concurrent writers")
	return cmd
}
