package cmd

import (
	"minimax/game"
	"minimax/meta"
	"minimax/searcher"
	"minimax/searcher/agent"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"
)

// positionFlags selects the game and the position to start from.
type positionFlags struct {
	game     string
	param    int
	starting string
	state    string
}

func (p *positionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&p.game, "game", "g", "subtract", "game to play: subtract, chopsticks or stonehenge")
	cmd.Flags().IntVarP(&p.param, "param", "p", 20, "starting value for subtract, board side for stonehenge")
	cmd.Flags().StringVar(&p.starting, "first", "p1", "player to move first: p1 or p2")
	cmd.Flags().StringVar(&p.state, "state", "", "JSON state to start from instead of the opening position")
}

func (p *positionFlags) session() (session, error) {
	starting, err := game.ParsePlayer(p.starting)
	if err != nil {
		return nil, err
	}
	return newSession(p.game, p.param, starting, p.state)
}

// budgetFlags bounds every search a command runs.
type budgetFlags struct {
	maxNodes int
	maxDepth int
}

func (b *budgetFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&b.maxNodes, "max-nodes", meta.CLI_MAX_NODES, "fail a search after this many nodes")
	cmd.Flags().IntVar(&b.maxDepth, "max-depth", 0, "fail a search below this many plies (0 for no limit)")
}

func (b *budgetFlags) options() []searcher.Option {
	maxNodes := b.maxNodes
	if maxNodes <= 0 {
		maxNodes = meta.CLI_MAX_NODES
	}
	return []searcher.Option{searcher.WithMaxNodes(maxNodes), searcher.WithMaxDepth(b.maxDepth)}
}

func newSolveCommand(colors func() aurora.Aurora) *cobra.Command {
	var (
		position   positionFlags
		budget     budgetFlags
		engineName string
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print the best move and the value of a position",
		Example: "  minimax solve --game subtract --param 7\n" +
			"  minimax solve --game chopsticks --engine rough\n" +
			"  minimax solve --game stonehenge --param 2 --engine recursive",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := position.session()
			if err != nil {
				return err
			}
			return s.solve(cmd.OutOrStdout(), colors(), engineName, budget.options())
		},
	}
	position.register(cmd)
	budget.register(cmd)
	cmd.Flags().StringVarP(&engineName, "engine", "e", agent.Iterative, "recursive, iterative or rough")
	return cmd
}
