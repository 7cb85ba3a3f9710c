package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/logrusorgru/aurora"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the minimax command tree.
func NewRootCommand() *cobra.Command {
	var noColor bool
	root := &cobra.Command{
		Use:           "minimax",
		Short:         "Solve and play two-player games of perfect information",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
			if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
				zerolog.SetGlobalLevel(lvl)
			}
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: noColor})
		},
	}
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	colors := func() aurora.Aurora { return aurora.NewAurora(!noColor) }
	root.AddCommand(
		newSolveCommand(colors),
		newMatchCommand(colors),
		newExperimentCommand(colors),
		newServeCommand(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		log.Error().Err(err).Msg("minimax failed")
		os.Exit(1)
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
