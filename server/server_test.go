package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"minimax/game"
	"minimax/game/chopsticks"
	"minimax/game/stonehenge"
	"minimax/game/subtract"
	"minimax/searcher"
	"minimax/searcher/agent"

	"github.com/stretchr/testify/require"
)

func post(t *testing.T, server *httptest.Server, path, body string) (int, []byte) {
	t.Helper()
	resp, err := server.Client().Post(server.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func get(t *testing.T, server *httptest.Server, path string) (int, []byte) {
	t.Helper()
	resp, err := server.Client().Get(server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func TestDiagnostics(t *testing.T) {
	server := httptest.NewServer(New().Handler())
	defer server.Close()

	status, body := get(t, server, "/health")
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"ok":true}`, string(body))

	status, body = get(t, server, "/games")
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"games":["chopsticks","stonehenge","subtract"]}`, string(body))

	status, body = get(t, server, "/games/chopsticks")
	require.Equal(t, http.StatusOK, status)
	var info gameResponse
	require.NoError(t, json.Unmarshal(body, &info))
	require.Equal(t, "chopsticks", info.Name)
	require.Equal(t, chopsticks.Game{}.Instructions(), info.Instructions)

	status, _ = get(t, server, "/games/checkers/solve")
	require.Equal(t, http.StatusNotFound, status)
}

func TestSolve(t *testing.T) {
	server := httptest.NewServer(New(WithMaxNodes(100_000)).Handler())
	defer server.Close()

	t.Run("subtract", func(t *testing.T) {
		status, body := post(t, server, "/games/subtract/solve", `{"value":9,"player":"p1"}`)

		require.Equal(t, http.StatusOK, status, string(body))
		var got agent.SolveResponse[subtract.Move]
		require.NoError(t, json.Unmarshal(body, &got))
		require.Equal(t, subtract.Move(4), got.Move)
		require.Equal(t, searcher.Win, got.Value)
	})

	t.Run("stonehenge", func(t *testing.T) {
		state, err := json.Marshal(stonehenge.New(1).Start(game.First))
		require.NoError(t, err)

		status, body := post(t, server, "/games/stonehenge/solve", string(state))

		require.Equal(t, http.StatusOK, status, string(body))
		require.JSONEq(t, `{"move":"A","value":1}`, string(body))
	})

	t.Run("client errors", func(t *testing.T) {
		tests := []struct {
			name   string
			path   string
			body   string
			status int
		}{
			{"malformed json", "/games/subtract/solve", `{"value":`, http.StatusBadRequest},
			{"invalid state", "/games/subtract/solve", `{"value":-3,"player":"p1"}`, http.StatusBadRequest},
			{"unknown player", "/games/subtract/solve", `{"value":3,"player":"p3"}`, http.StatusBadRequest},
			{"stonehenge side", "/games/stonehenge/solve", `{"side":9,"cells":"","lines":"","player":"p1"}`, http.StatusBadRequest},
			{"impossible stonehenge position", "/games/stonehenge/solve", `{"side":1,"cells":"121","lines":"@@@@@@","player":"p2"}`, http.StatusBadRequest},
			{"huge subtract value", "/games/subtract/solve", `{"value":1000000000000,"player":"p1"}`, http.StatusBadRequest},
			{"finished game", "/games/subtract/solve", `{"value":0,"player":"p2"}`, http.StatusConflict},
			{"cyclic game", "/games/chopsticks/solve", `{"hands":[[1,1],[1,1]],"player":"p1"}`, http.StatusUnprocessableEntity},
		}
		for _, tt := range tests {
			status, body := post(t, server, tt.path, tt.body)

			require.Equal(t, tt.status, status, tt.name)
			var failure agent.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &failure), tt.name)
			require.NotEmpty(t, failure.Error, tt.name)
		}
	})
}

func TestEstimate(t *testing.T) {
	server := httptest.NewServer(New().Handler())
	defer server.Close()

	status, body := post(t, server, "/games/subtract/estimate", `{"value":2,"player":"p1"}`)
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"value":-1}`, string(body))

	status, body = post(t, server, "/games/chopsticks/estimate", `{"hands":[[1,1],[1,1]],"player":"p2"}`)
	require.Equal(t, http.StatusOK, status, "Estimates terminate on cyclic games")
	require.JSONEq(t, `{"value":0}`, string(body))
}

func TestMetrics(t *testing.T) {
	server := httptest.NewServer(New().Handler())
	defer server.Close()

	status, _ := post(t, server, "/games/subtract/solve", `{"value":7,"player":"p1"}`)
	require.Equal(t, http.StatusOK, status)

	status, body := get(t, server, "/metrics")
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, string(body), `minimax_searches_total{engine="iterative"} 1`)
	require.Contains(t, string(body), `minimax_nodes_total{engine="iterative"} 18`)
}

func TestRemoteAgentRoundTrip(t *testing.T) {
	server := httptest.NewServer(New().Handler())
	defer server.Close()

	t.Run("subtract", func(t *testing.T) {
		g := subtract.Game{}
		remote := agent.NewRemoteAgent[subtract.State, subtract.Move](server.Client(), server.URL, "subtract")
		local := searcher.NewIterative[subtract.State, subtract.Move](g)
		for n := 1; n <= 15; n++ {
			state := subtract.New(n, game.Second)
			want, _, err := local.Solve(state)
			require.NoError(t, err)

			got, err := remote.FindMove(state)

			require.NoError(t, err)
			require.Equal(t, want, got, "Move from %d", n)
		}
	})

	t.Run("stonehenge", func(t *testing.T) {
		g := stonehenge.New(2)
		remote := agent.NewRemoteAgent[stonehenge.State, stonehenge.Move](server.Client(), server.URL, "stonehenge")
		state := g.Start(game.First)
		want, _, err := searcher.NewIterative[stonehenge.State, stonehenge.Move](g).Solve(state)
		require.NoError(t, err)

		got, err := remote.FindMove(state)

		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("finished game", func(t *testing.T) {
		remote := agent.NewRemoteAgent[subtract.State, subtract.Move](server.Client(), server.URL, "subtract")

		_, err := remote.FindMove(subtract.New(0, game.First))

		require.ErrorIs(t, err, agent.ErrGameOver)
	})
}
