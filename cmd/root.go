package main

import (
	"fmt"
	"os"

	"github.com/okian/studytrack/internal/config"
	"github.com/okian/studytrack/pkg/logger"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

// cli carries state shared by the subcommands of one invocation.
type cli struct {
	configPath string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "studytrack",
		Short: "Student self-tracking analytics",
		Long: "studytrack correlates students' behavioral metrics with their outcomes,\n" +
			"turns the correlations into prioritized recommendations and ranks\n" +
			"subjects for a chosen career path.",
		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.load(cmd)
		},
	}
	root.Version = version
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "YAML config file (overrides "+config.EnvFile+")")

	root.AddCommand(
		newServeCmd(c),
		newRecomputeCmd(c),
		newRecommendCmd(c),
		newCareerCmd(c),
		newSeedCmd(c),
	)
	return root
}

// load reads the configuration and applies the log level.
func (c *cli) load(cmd *cobra.Command) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	if c.configPath != "" {
		if err := os.Setenv(config.EnvFile, c.configPath); err != nil {
			return err
		}
	}
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return err
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(cmd.Context(), "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}
	c.cfg = cfg
	return nil
}
