package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"minimax/game"
	"minimax/metrics"
	"minimax/searcher"
	"minimax/searcher/agent"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// requestError is a client mistake reported with status 400.
type requestError struct {
	message string
}

func (e requestError) Error() string { return e.message }

func badRequest(format string, args ...any) error {
	return requestError{message: fmt.Sprintf(format, args...)}
}

type estimateResponse struct {
	Value searcher.Outcome `json:"value"`
}

type gameResponse struct {
	Name         string `json:"name"`
	Instructions string `json:"instructions"`
}

// gameRoutes serves one game. gameFor returns the rules a posted state is
// played under, which for stonehenge depends on the board side.
type gameRoutes[S comparable, M comparable] struct {
	srv     *Server
	name    string
	gameFor func(S) (game.Game[S, M], error)
}

func mount[S comparable, M comparable](s *Server, r chi.Router, name, instructions string, gameFor func(S) (game.Game[S, M], error)) {
	gr := &gameRoutes[S, M]{srv: s, name: name, gameFor: gameFor}
	s.games[name] = instructions
	r.Route("/"+name, func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, gameResponse{Name: name, Instructions: instructions})
		})
		r.Post("/solve", gr.handleSolve)
		r.Post("/estimate", gr.handleEstimate)
	})
}

// decode reads a state and checks it against the rules of its game.
func (gr *gameRoutes[S, M]) decode(r *http.Request) (S, game.Game[S, M], error) {
	var state S
	if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
		return state, nil, badRequest("invalid %s state: %v", gr.name, err)
	}
	g, err := gr.gameFor(state)
	if err != nil {
		return state, nil, err
	}
	if v, ok := g.(game.Validator[S]); ok {
		if err := v.Validate(state); err != nil {
			return state, nil, badRequest("invalid %s state: %v", gr.name, err)
		}
	}
	return state, g, nil
}

func (gr *gameRoutes[S, M]) handleSolve(w http.ResponseWriter, r *http.Request) {
	state, g, err := gr.decode(r)
	if err != nil {
		gr.fail(w, err)
		return
	}
	if g.IsOver(state) {
		gr.fail(w, agent.ErrGameOver)
		return
	}

	collector := metrics.NewCollector(gr.srv.sink)
	solver := searcher.NewIterative(g, searcher.WithMaxNodes(gr.srv.maxNodes), searcher.WithMetrics(collector))
	move, value, err := solver.Solve(state)
	if err != nil {
		gr.fail(w, err)
		return
	}
	log.Debug().Msgf("%s: solved %v with %v (%s)", gr.name, state, move, value)
	writeJSON(w, http.StatusOK, agent.SolveResponse[M]{Move: move, Value: value})
}

func (gr *gameRoutes[S, M]) handleEstimate(w http.ResponseWriter, r *http.Request) {
	state, g, err := gr.decode(r)
	if err != nil {
		gr.fail(w, err)
		return
	}
	value, err := searcher.NewRough(g).Estimate(state)
	if err != nil {
		gr.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, estimateResponse{Value: value})
}

func (gr *gameRoutes[S, M]) fail(w http.ResponseWriter, err error) {
	var reqErr requestError
	switch {
	case errors.As(err, &reqErr):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, agent.ErrGameOver):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, searcher.ErrBudgetExceeded):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		log.Error().Err(err).Msgf("%s: search failed", gr.name)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
