package engine

import (
	"errors"
	"testing"

	"minimax/game"
	"minimax/game/chopsticks"
	"minimax/game/stonehenge"
	"minimax/game/subtract"
	"minimax/searcher"
	"minimax/searcher/agent"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("minimax never loses a won position", func(t *testing.T) {
		g := subtract.Game{}
		for seed := uint64(1); seed <= 5; seed++ {
			agents := [2]agent.Strategy[subtract.State, subtract.Move]{
				agent.NewMinimaxAgent[subtract.State, subtract.Move](g, searcher.NewIterative[subtract.State, subtract.Move](g)),
				agent.NewRandomAgent[subtract.State, subtract.Move](g, seed),
			}
			e := New[subtract.State, subtract.Move](g, agents)

			result, err := e.Run(subtract.New(19, game.First))

			require.NoError(t, err)
			require.Equal(t, game.First, result.Winner, "Seed %d", seed)
			require.Equal(t, 0, result.Final.Value)
		}
	})

	t.Run("records the game", func(t *testing.T) {
		g := stonehenge.New(2)
		agents := [2]agent.Strategy[stonehenge.State, stonehenge.Move]{
			agent.NewRoughOutcomeAgent[stonehenge.State, stonehenge.Move](g),
			agent.NewRandomAgent[stonehenge.State, stonehenge.Move](g, 7),
		}
		e := New[stonehenge.State, stonehenge.Move](g, agents)

		result, err := e.Run(g.Start(game.Second))

		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, result.Game.ID)
		require.Equal(t, game.Second, result.Game.StartingPlayer)
		require.True(t, g.IsOver(result.Final))
		require.NotEqual(t, game.NoPlayer, result.Winner, "Stonehenge always has a winner")
		require.Equal(t, result.Winner, result.Game.Winner)
		require.Equal(t, len(result.Moves), result.Game.TotalMoves)
		require.False(t, result.Game.EndTime.Before(result.Game.StartTime))
		for i, move := range result.Moves {
			require.Equal(t, i+1, move.Step)
			want := game.Second
			if i%2 == 1 {
				want = game.First
			}
			require.Equal(t, want, move.Player, "Players should alternate")
		}
	})

	t.Run("turn limit", func(t *testing.T) {
		g := chopsticks.Game{}
		agents := [2]agent.Strategy[chopsticks.State, chopsticks.Move]{
			agent.NewRandomAgent[chopsticks.State, chopsticks.Move](g, 1),
			agent.NewRandomAgent[chopsticks.State, chopsticks.Move](g, 2),
		}
		e := New[chopsticks.State, chopsticks.Move](g, agents, WithMaxTurns(3))

		result, err := e.Run(chopsticks.New(game.First))

		require.NoError(t, err)
		require.Equal(t, game.NoPlayer, result.Winner, "Nobody wins a stopped game")
		require.Equal(t, 3, result.Game.TotalMoves)
		require.False(t, g.IsOver(result.Final))
	})

	t.Run("illegal move", func(t *testing.T) {
		g := subtract.Game{}
		cheat := agent.StrategyFunc[subtract.State, subtract.Move](func(subtract.State) (subtract.Move, error) {
			return 2, nil
		})
		e := New[subtract.State, subtract.Move](g, [2]agent.Strategy[subtract.State, subtract.Move]{cheat, cheat})

		_, err := e.Run(subtract.New(5, game.First))

		require.ErrorIs(t, err, game.ErrInvalidMove)
	})

	t.Run("agent failure", func(t *testing.T) {
		g := subtract.Game{}
		failure := errors.New("unplugged")
		broken := agent.StrategyFunc[subtract.State, subtract.Move](func(subtract.State) (subtract.Move, error) {
			return 0, failure
		})
		random := agent.NewRandomAgent[subtract.State, subtract.Move](g, 1)
		e := New[subtract.State, subtract.Move](g, [2]agent.Strategy[subtract.State, subtract.Move]{random, broken})

		_, err := e.Run(subtract.New(5, game.First))

		require.ErrorIs(t, err, failure)
	})

	t.Run("finished game", func(t *testing.T) {
		g := subtract.Game{}
		random := agent.NewRandomAgent[subtract.State, subtract.Move](g, 1)
		e := New[subtract.State, subtract.Move](g, [2]agent.Strategy[subtract.State, subtract.Move]{random, random})

		result, err := e.Run(subtract.New(0, game.First))

		require.NoError(t, err)
		require.Equal(t, game.Second, result.Winner)
		require.Empty(t, result.Moves)
	})
}

func TestWithMaxTurns(t *testing.T) {
	require.Equal(t, 10, newConfig([]Option{WithMaxTurns(10)}).maxTurns)
	require.Positive(t, newConfig([]Option{WithMaxTurns(0)}).maxTurns, "Non-positive limits keep the default")
}
