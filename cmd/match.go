package cmd

import (
	"minimax/engine"
	"minimax/meta"
	"minimax/searcher/agent"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"
)

func newMatchCommand(colors func() aurora.Aurora) *cobra.Command {
	var (
		position      positionFlags
		budget        budgetFlags
		first, second string
		seed          uint64
		maxTurns      int
	)
	cmd := &cobra.Command{
		Use:     "match",
		Short:   "Play one game between two strategies",
		Example: "  minimax match --game stonehenge --param 2 --p1 rough --p2 iterative",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := position.session()
			if err != nil {
				return err
			}
			return s.match(cmd.OutOrStdout(), colors(), first, second, seed, budget.options(),
				[]engine.Option{engine.WithMaxTurns(maxTurns)})
		},
	}
	position.register(cmd)
	budget.register(cmd)
	cmd.Flags().StringVar(&first, "p1", agent.Iterative, "strategy of the first player: recursive, iterative, rough or random")
	cmd.Flags().StringVar(&second, "p2", agent.Random, "strategy of the second player")
	cmd.Flags().Uint64Var(&seed, "seed", meta.SEED, "seed for random strategies")
	cmd.Flags().IntVar(&maxTurns, "max-turns", meta.MAX_TURNS, "stop without a winner after this many moves")
	return cmd
}
