package engine

import (
	"fmt"
	"time"

	"minimax/game"
	"minimax/metrics"
	"minimax/searcher/agent"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Engine plays two strategies against each other in one process. Agents are
// indexed by Player.Index.
type Engine[S comparable, M comparable] struct {
	game   game.Game[S, M]
	agents [2]agent.Strategy[S, M]
	config
}

func New[S comparable, M comparable](g game.Game[S, M], agents [2]agent.Strategy[S, M], options ...Option) *Engine[S, M] {
	if g == nil {
		panic("game cannot be nil")
	}
	for i, a := range agents {
		if a == nil {
			panic(fmt.Sprintf("agent %d cannot be nil", i))
		}
	}
	return &Engine[S, M]{game: g, agents: agents, config: newConfig(options)}
}

// Run plays from state until the game is over or the turn limit is reached.
func (e *Engine[S, M]) Run(state S) (Result[S], error) {
	result := Result[S]{
		Game: metrics.GameMetric{
			ID:             uuid.New(),
			StartingPlayer: e.game.CurrentPlayer(state),
			StartTime:      time.Now(),
		},
	}
	log.Info().Msgf("game %s: %s is starting", result.Game.ID, result.Game.StartingPlayer)

	turn := 1
	for !e.game.IsOver(state) && turn <= e.maxTurns {
		player := e.game.CurrentPlayer(state)
		start := time.Now()
		move, err := e.agents[player.Index()].FindMove(state)
		if err != nil {
			return result, fmt.Errorf("%s failed to find a move on turn %d: %w", player, turn, err)
		}
		result.Moves = append(result.Moves, metrics.MoveMetric{
			Step:     turn,
			Player:   player,
			Move:     fmt.Sprint(move),
			Duration: time.Since(start),
		})

		next, err := e.game.ApplyMove(state, move)
		if err != nil {
			return result, fmt.Errorf("%s played on turn %d: %w", player, turn, err)
		}
		log.Debug().Msgf("turn %d: %s played %v", turn, player, move)
		state = next
		turn++
	}

	result.Final = state
	result.Winner = winner(e.game, state)
	result.Game.Winner = result.Winner
	result.Game.EndTime = time.Now()
	result.Game.Duration = result.Game.EndTime.Sub(result.Game.StartTime)
	result.Game.TotalMoves = len(result.Moves)

	if !e.game.IsOver(state) {
		log.Info().Msgf("game %s: stopped after %d turns without a winner", result.Game.ID, e.maxTurns)
	} else {
		log.Info().Msgf("game %s: winner %s after %d moves", result.Game.ID, result.Winner, result.Game.TotalMoves)
	}
	return result, nil
}

func winner[S comparable, M comparable](g game.Game[S, M], state S) game.Player {
	if !g.IsOver(state) {
		return game.NoPlayer
	}
	for _, p := range []game.Player{game.First, game.Second} {
		if g.Winner(state, p) {
			return p
		}
	}
	return game.NoPlayer
}
