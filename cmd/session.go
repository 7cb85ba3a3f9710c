package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"minimax/engine"
	"minimax/game"
	"minimax/game/chopsticks"
	"minimax/game/stonehenge"
	"minimax/game/subtract"
	"minimax/searcher"
	"minimax/searcher/agent"

	"github.com/logrusorgru/aurora"
)

// session is one game position chosen on the command line.
type session interface {
	solve(out io.Writer, au aurora.Aurora, engineName string, options []searcher.Option) error
	match(out io.Writer, au aurora.Aurora, first, second string, seed uint64, options []searcher.Option, engineOptions []engine.Option) error
}

type gameSession[S comparable, M comparable] struct {
	game         game.Game[S, M]
	state        S
	instructions string
}

// newSession starts the named game. param is the starting value for subtract
// and the board side for stonehenge. A non-empty rawState replaces the
// starting position with a JSON encoded state.
func newSession(name string, param int, starting game.Player, rawState string) (session, error) {
	switch name {
	case "subtract":
		if param < 0 || param > subtract.MaxValue {
			return nil, fmt.Errorf("subtract start must be between 0 and %d, got %d", subtract.MaxValue, param)
		}
		g := subtract.Game{}
		return load[subtract.State, subtract.Move](g, subtract.New(param, starting), g.Instructions(), rawState)
	case "chopsticks":
		g := chopsticks.Game{}
		return load[chopsticks.State, chopsticks.Move](g, chopsticks.New(starting), g.Instructions(), rawState)
	case "stonehenge":
		if param < stonehenge.MinSide || param > stonehenge.MaxSide {
			return nil, fmt.Errorf("stonehenge side must be between %d and %d, got %d", stonehenge.MinSide, stonehenge.MaxSide, param)
		}
		g := stonehenge.New(param)
		return load[stonehenge.State, stonehenge.Move](g, g.Start(starting), g.Instructions(), rawState)
	}
	return nil, fmt.Errorf("unknown game %q, expected subtract, chopsticks or stonehenge", name)
}

func load[S comparable, M comparable](g game.Game[S, M], state S, instructions, rawState string) (session, error) {
	if rawState != "" {
		if err := json.Unmarshal([]byte(rawState), &state); err != nil {
			return nil, fmt.Errorf("failed to parse state: %w", err)
		}
		if v, ok := g.(game.Validator[S]); ok {
			if err := v.Validate(state); err != nil {
				return nil, err
			}
		}
	}
	return &gameSession[S, M]{game: g, state: state, instructions: instructions}, nil
}

func (s *gameSession[S, M]) solve(out io.Writer, au aurora.Aurora, name string, options []searcher.Option) error {
	fmt.Fprintln(out, au.Faint(s.instructions))
	fmt.Fprintf(out, "state: %v\n", s.state)
	if s.game.IsOver(s.state) {
		return agent.ErrGameOver
	}

	var (
		move  M
		value searcher.Outcome
		err   error
	)
	switch name {
	case agent.Recursive:
		move, value, err = searcher.NewRecursive(s.game, options...).Solve(s.state)
	case agent.Iterative:
		move, value, err = searcher.NewIterative(s.game, options...).Solve(s.state)
	case agent.Rough:
		value, err = searcher.NewRough(s.game).Estimate(s.state)
		if err == nil {
			move, err = agent.NewRoughOutcomeAgent(s.game).FindMove(s.state)
		}
	default:
		return fmt.Errorf("unknown engine %q, expected %s, %s or %s", name, agent.Recursive, agent.Iterative, agent.Rough)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "move: %v\n", au.Bold(move))
	fmt.Fprintf(out, "value for %s: %s\n", s.game.CurrentPlayer(s.state), colorOutcome(au, value))
	return nil
}

func (s *gameSession[S, M]) match(out io.Writer, au aurora.Aurora, first, second string, seed uint64, options []searcher.Option, engineOptions []engine.Option) error {
	firstAgent, err := agent.New(first, s.game, seed, options...)
	if err != nil {
		return err
	}
	secondAgent, err := agent.New(second, s.game, seed+1, options...)
	if err != nil {
		return err
	}

	e := engine.New(s.game, [2]agent.Strategy[S, M]{firstAgent, secondAgent}, engineOptions...)
	result, err := e.Run(s.state)
	if err != nil {
		return err
	}

	names := map[game.Player]string{game.First: first, game.Second: second}
	for _, mm := range result.Moves {
		fmt.Fprintf(out, "%3d. %s (%s) %s\n", mm.Step, mm.Player, names[mm.Player], mm.Move)
	}
	fmt.Fprintf(out, "final: %v\n", result.Final)
	if result.Winner == game.NoPlayer {
		fmt.Fprintf(out, "%s after %d moves\n", au.Yellow("no winner"), result.Game.TotalMoves)
		return nil
	}
	fmt.Fprintf(out, "%s wins after %d moves\n", au.Green(fmt.Sprintf("%s (%s)", result.Winner, names[result.Winner])), result.Game.TotalMoves)
	return nil
}

func colorOutcome(au aurora.Aurora, value searcher.Outcome) aurora.Value {
	switch value {
	case searcher.Win:
		return au.Green(value)
	case searcher.Lose:
		return au.Red(value)
	}
	return au.Yellow(value)
}
