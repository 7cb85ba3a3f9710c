package chopsticks

import (
	"testing"

	"minimax/game"

	"github.com/stretchr/testify/require"
)

func TestLegalMoves(t *testing.T) {
	g := Game{}

	t.Run("opening position allows every touch", func(t *testing.T) {
		require.Equal(t, allMoves, g.LegalMoves(New(game.First)))
	})

	t.Run("dead hands cannot touch or be touched", func(t *testing.T) {
		state := State{Hands: [2][2]int8{{0, 2}, {3, 0}}, Player: game.First}

		require.Equal(t, []Move{{Right, Left}}, g.LegalMoves(state))
	})

	t.Run("finished game has no moves", func(t *testing.T) {
		state := State{Hands: [2][2]int8{{0, 0}, {3, 1}}, Player: game.First}

		require.Empty(t, g.LegalMoves(state))
	})
}

func TestApplyMove(t *testing.T) {
	g := Game{}

	t.Run("adding fingers to the opponent", func(t *testing.T) {
		state := New(game.First)

		got, err := g.ApplyMove(state, Move{Left, Right})

		require.NoError(t, err)
		require.Equal(t, State{Hands: [2][2]int8{{1, 1}, {1, 2}}, Player: game.Second}, got)
		require.Equal(t, New(game.First), state, "Input state should not change")
	})

	t.Run("second player touches the first player's hands", func(t *testing.T) {
		state := State{Hands: [2][2]int8{{1, 1}, {3, 1}}, Player: game.Second}

		got, err := g.ApplyMove(state, Move{Left, Left})

		require.NoError(t, err)
		require.Equal(t, [2][2]int8{{4, 1}, {3, 1}}, got.Hands)
	})

	t.Run("wrapping at five kills the hand", func(t *testing.T) {
		state := State{Hands: [2][2]int8{{2, 1}, {3, 1}}, Player: game.First}

		got, err := g.ApplyMove(state, Move{Left, Left})

		require.NoError(t, err)
		require.Equal(t, int8(0), got.Hands[1][Left])
	})

	t.Run("rejecting a touch with a dead hand", func(t *testing.T) {
		state := State{Hands: [2][2]int8{{0, 2}, {3, 1}}, Player: game.First}

		_, err := g.ApplyMove(state, Move{Left, Left})

		require.ErrorIs(t, err, game.ErrInvalidMove)
	})
}

func TestWinner(t *testing.T) {
	g := Game{}
	state := State{Hands: [2][2]int8{{1, 4}, {0, 0}}, Player: game.Second}

	require.True(t, g.IsOver(state))
	require.True(t, g.Winner(state, game.First))
	require.False(t, g.Winner(state, game.Second))
	require.False(t, g.Winner(New(game.First), game.First), "Opening position should have no winner")
}

func TestPositionsRepeat(t *testing.T) {
	g := Game{}

	// Depth-first walk with on-path marks: reaching a state that is still on
	// the path means the game graph has a cycle.
	const (
		unseen = iota
		onPath
		done
	)
	color := map[State]int{}
	var cyclic func(State) bool
	cyclic = func(s State) bool {
		color[s] = onPath
		for _, m := range g.LegalMoves(s) {
			next, err := g.ApplyMove(s, m)
			require.NoError(t, err)
			switch color[next] {
			case onPath:
				return true
			case unseen:
				if cyclic(next) {
					return true
				}
			}
		}
		color[s] = done
		return false
	}

	require.True(t, cyclic(New(game.First)), "Opening position should reach a repeated position")
}

func TestParseMove(t *testing.T) {
	got, err := ParseMove("rl")
	require.NoError(t, err)
	require.Equal(t, Move{Right, Left}, got)
	require.Equal(t, "rl", got.String())

	_, err = ParseMove("lx")
	require.Error(t, err)
	_, err = ParseMove("l")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	g := Game{}

	require.NoError(t, g.Validate(New(game.Second)))
	require.Error(t, g.Validate(State{Hands: [2][2]int8{{5, 1}, {1, 1}}, Player: game.First}))
	require.Error(t, g.Validate(State{Hands: [2][2]int8{{1, 1}, {1, 1}}}))
}
