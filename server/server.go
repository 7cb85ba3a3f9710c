// Package server exposes the search engines over HTTP.
//
//   - GET  /health
//   - GET  /metrics                 Prometheus search counters
//   - GET  /games                   names of the served games
//   - GET  /games/{game}            rules of one game
//   - POST /games/{game}/solve      exact move and value of the posted state
//   - POST /games/{game}/estimate   rough value of the posted state
package server

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"minimax/game"
	"minimax/game/chopsticks"
	"minimax/game/stonehenge"
	"minimax/game/subtract"
	"minimax/meta"
	"minimax/metrics"
	"minimax/searcher/agent"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Option func(s *Server)

// WithMaxNodes sets the node budget of every solve request.
func WithMaxNodes(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxNodes = n
		}
	}
}

// Server bundles the router with the metrics registry its searches report to.
type Server struct {
	r        *chi.Mux
	registry *prometheus.Registry
	sink     *metrics.PrometheusSink
	maxNodes int
	games    map[string]string // name -> instructions
}

func New(options ...Option) *Server {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	s := &Server{
		r:        chi.NewRouter(),
		registry: registry,
		sink:     metrics.NewPrometheusSink(registry),
		maxNodes: meta.SERVER_MAX_NODES,
		games:    map[string]string{},
	}
	for _, option := range options {
		option(s)
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(time.Minute))
	s.r.Use(jsonContentType)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	s.r.Route("/games", func(r chi.Router) {
		r.Get("/", s.handleGames)
		mount[subtract.State, subtract.Move](s, r, "subtract", subtract.Game{}.Instructions(), func(subtract.State) (game.Game[subtract.State, subtract.Move], error) {
			return subtract.Game{}, nil
		})
		mount[chopsticks.State, chopsticks.Move](s, r, "chopsticks", chopsticks.Game{}.Instructions(), func(chopsticks.State) (game.Game[chopsticks.State, chopsticks.Move], error) {
			return chopsticks.Game{}, nil
		})
		mount[stonehenge.State, stonehenge.Move](s, r, "stonehenge", stonehenge.Game{}.Instructions(), stonehengeBoards())
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found: "+r.URL.Path)
	})

	return s
}

// Start serves HTTP on addr until the listener fails.
func (s *Server) Start(addr string) error {
	log.Info().Msgf("serving %d games on %s", len(s.games), addr)
	return http.ListenAndServe(addr, s.r)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.r }

func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(s.games))
	for name := range s.games {
		names = append(names, name)
	}
	sort.Strings(names)
	writeJSON(w, http.StatusOK, map[string][]string{"games": names})
}

// stonehengeBoards picks the board matching the side recorded in a state.
func stonehengeBoards() func(stonehenge.State) (game.Game[stonehenge.State, stonehenge.Move], error) {
	boards := map[int]stonehenge.Game{}
	for side := stonehenge.MinSide; side <= stonehenge.MaxSide; side++ {
		boards[side] = stonehenge.New(side)
	}
	return func(s stonehenge.State) (game.Game[stonehenge.State, stonehenge.Move], error) {
		g, ok := boards[s.Side]
		if !ok {
			return nil, badRequest("stonehenge side must be between %d and %d, got %d", stonehenge.MinSide, stonehenge.MaxSide, s.Side)
		}
		return g, nil
	}
}

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Warn().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, agent.ErrorResponse{Error: message})
}
