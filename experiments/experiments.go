package experiments

import (
	"fmt"

	"minimax/engine"
	"minimax/game"
	"minimax/game/chopsticks"
	"minimax/game/stonehenge"
	"minimax/game/subtract"
	"minimax/meta"
	"minimax/metrics"
	"minimax/searcher"
	"minimax/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Tally counts the results of one matchup.
type Tally struct {
	Matchup
	FirstWins  int
	SecondWins int
	Draws      int
}

type Summary struct {
	Dir     string
	Tallies []Tally
}

// Run plays every matchup of cfg and writes setup.yaml, the game and move
// records and a wins chart under cfg.Output.
func Run(cfg Config) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	switch cfg.Game {
	case "subtract":
		if cfg.Param < 0 || cfg.Param > subtract.MaxValue {
			return Summary{}, fmt.Errorf("subtract start must be between 0 and %d, got %d", subtract.MaxValue, cfg.Param)
		}
		return run[subtract.State, subtract.Move](cfg, subtract.Game{}, func(p game.Player) subtract.State {
			return subtract.New(cfg.Param, p)
		})
	case "chopsticks":
		return run[chopsticks.State, chopsticks.Move](cfg, chopsticks.Game{}, chopsticks.New)
	case "stonehenge":
		if cfg.Param < stonehenge.MinSide || cfg.Param > stonehenge.MaxSide {
			return Summary{}, fmt.Errorf("stonehenge side must be between %d and %d, got %d", stonehenge.MinSide, stonehenge.MaxSide, cfg.Param)
		}
		g := stonehenge.New(cfg.Param)
		return run[stonehenge.State, stonehenge.Move](cfg, g, g.Start)
	}
	return Summary{}, fmt.Errorf("unknown game %q", cfg.Game)
}

func run[S comparable, M comparable](cfg Config, g game.Game[S, M], start func(game.Player) S) (Summary, error) {
	maxNodes := cfg.MaxNodes
	if maxNodes <= 0 {
		maxNodes = meta.CLI_MAX_NODES
	}
	options := []searcher.Option{searcher.WithMaxNodes(maxNodes)}

	count := 0
	tallies := make([]Tally, len(cfg.Matchups))
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	for mi, matchup := range cfg.Matchups {
		log.Info().Msgf("starting matchup %d of %d: %s...", mi+1, len(cfg.Matchups), matchup)
		tallies[mi].Matchup = matchup

		for i := 0; i < cfg.Games; i++ {
			count++
			seed := cfg.Seed + uint64(count)
			first, err := agent.New(matchup.First, g, seed, options...)
			if err != nil {
				return Summary{}, err
			}
			second, err := agent.New(matchup.Second, g, seed+1, options...)
			if err != nil {
				return Summary{}, err
			}

			// Alternate who moves first, keeping each agent in its seat
			starting := game.First
			if i%2 == 1 {
				starting = game.Second
			}
			e := engine.New(g, [2]agent.Strategy[S, M]{first, second}, engine.WithMaxTurns(cfg.MaxTurns))
			result, err := e.Run(start(starting))
			if err != nil {
				return Summary{}, fmt.Errorf("matchup %s game %d: %w", matchup, i+1, err)
			}

			switch result.Winner {
			case game.First:
				tallies[mi].FirstWins++
			case game.Second:
				tallies[mi].SecondWins++
			default:
				tallies[mi].Draws++
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				Matchup:    mi + 1,
				First:      matchup.First,
				Second:     matchup.Second,
				GameMetric: result.Game,
			})
			for _, mm := range result.Moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       result.Game.ID.String(),
					MoveMetric: mm,
				})
			}
		}
		log.Info().Msgf("completed matchup %d of %d: first seat %d, second seat %d, draws %d",
			mi+1, len(cfg.Matchups), tallies[mi].FirstWins, tallies[mi].SecondWins, tallies[mi].Draws)
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	writer, err := metrics.NewWriter(cfg.Output, cfg.Name)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteSetup(cfg); err != nil {
		return Summary{}, err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return Summary{}, err
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return Summary{}, err
	}
	log.Info().Msg("stored move records")
	if err := writeChart(writer.Dir(), cfg.Name, tallies); err != nil {
		return Summary{}, err
	}

	return Summary{Dir: writer.Dir(), Tallies: tallies}, nil
}
