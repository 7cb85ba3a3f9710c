package agent

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"minimax/searcher"
)

// SolveResponse is the body of a successful solve request.
type SolveResponse[M comparable] struct {
	Move  M                `json:"move"`
	Value searcher.Outcome `json:"value"`
}

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

type remoteAgent[S comparable, M comparable] struct {
	client   *http.Client
	endpoint string
}

// NewRemoteAgent returns an agent that asks a solve server for its moves.
func NewRemoteAgent[S comparable, M comparable](client *http.Client, baseURL, gameName string) Strategy[S, M] {
	if client == nil {
		client = http.DefaultClient
	}
	endpoint, err := url.JoinPath(baseURL, "games", gameName, "solve")
	if err != nil {
		panic(fmt.Sprintf("invalid server url %q: %v", baseURL, err))
	}
	return &remoteAgent[S, M]{client: client, endpoint: endpoint}
}

func (a *remoteAgent[S, M]) FindMove(state S) (M, error) {
	var none M
	body, err := json.Marshal(state)
	if err != nil {
		return none, fmt.Errorf("failed to encode state: %w", err)
	}

	resp, err := a.client.Post(a.endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return none, fmt.Errorf("failed to reach solve server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return none, statusError(resp)
	}

	var solved SolveResponse[M]
	if err := json.NewDecoder(resp.Body).Decode(&solved); err != nil {
		return none, fmt.Errorf("failed to decode move: %w", err)
	}
	return solved.Move, nil
}

func statusError(resp *http.Response) error {
	out, _ := io.ReadAll(resp.Body)
	var body ErrorResponse
	message := string(out)
	if json.Unmarshal(out, &body) == nil && body.Error != "" {
		message = body.Error
	}

	var cause error
	switch resp.StatusCode {
	case http.StatusConflict:
		cause = ErrGameOver
	case http.StatusUnprocessableEntity:
		cause = searcher.ErrBudgetExceeded
	default:
		cause = errors.New("solve request failed")
	}
	return fmt.Errorf("%w: server returned status %d: %s", cause, resp.StatusCode, message)
}
