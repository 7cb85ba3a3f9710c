package cmd

import (
	"fmt"

	"minimax/experiments"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"
)

func newExperimentCommand(colors func() aurora.Aurora) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:     "experiment",
		Short:   "Play the matchups of a YAML experiment and store the results",
		Example: "  minimax experiment --config experiment.yaml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := experiments.LoadConfig(path)
			if err != nil {
				return err
			}
			summary, err := experiments.Run(cfg)
			if err != nil {
				return err
			}

			au := colors()
			out := cmd.OutOrStdout()
			for _, tally := range summary.Tallies {
				fmt.Fprintf(out, "%-24s %s %s %s\n", tally.Matchup,
					au.Green(fmt.Sprintf("p1 %d", tally.FirstWins)),
					au.Red(fmt.Sprintf("p2 %d", tally.SecondWins)),
					au.Yellow(fmt.Sprintf("draws %d", tally.Draws)))
			}
			fmt.Fprintf(out, "results in %s\n", au.Bold(summary.Dir))
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "experiment.yaml", "experiment file")
	return cmd
}
