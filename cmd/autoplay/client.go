package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mtmal/snake-game-server/game/engine"
	"github.com/mtmal/snake-game-server/game/leaderboard"
	"github.com/mtmal/snake-game-server/game/service"
)

// Client drives sessions on a remote game server through its REST API.
type Client struct {
	baseURL   string
	sessionID string
	client    *http.Client
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// apiCall performs an HTTP request and decodes the JSON response into
// result. Error responses surface the server's error message verbatim.
func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// CreateSession starts a new game on the server and remembers its id.
// An empty configID selects the server's default configuration.
func (c *Client) CreateSession(configID string) (*service.SessionInfo, error) {
	var body interface{}
	if configID != "" {
		body = map[string]string{"config_id": configID}
	}

	var info service.SessionInfo
	if err := c.apiCall("POST", "/api/sessions", body, &info); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	c.sessionID = info.ID
	return &info, nil
}

// GetSession fetches the current session's details and state.
func (c *Client) GetSession() (*service.SessionInfo, error) {
	var info service.SessionInfo
	if err := c.apiCall("GET", "/api/sessions/"+c.sessionID, nil, &info); err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &info, nil
}

// AITick asks the server to pick a heading with its heuristic and advance
// the game one step.
func (c *Client) AITick() (*engine.Snapshot, error) {
	var state engine.Snapshot
	if err := c.apiCall("POST", "/api/sessions/"+c.sessionID+"/ai-tick", nil, &state); err != nil {
		return nil, fmt.Errorf("ai tick: %w", err)
	}
	return &state, nil
}

// Reset restarts the session's game from its configuration.
func (c *Client) Reset() (*engine.Snapshot, error) {
	var state engine.Snapshot
	if err := c.apiCall("POST", "/api/sessions/"+c.sessionID+"/reset", nil, &state); err != nil {
		return nil, fmt.Errorf("reset: %w", err)
	}
	return &state, nil
}

// SubmitScore records a score on the shared leaderboard and returns the
// top entries after the submission.
func (c *Client) SubmitScore(name string, score int) ([]leaderboard.Entry, error) {
	body := map[string]interface{}{"name": name, "score": score}

	var entries []leaderboard.Entry
	if err := c.apiCall("POST", "/api/leaderboard", body, &entries); err != nil {
		return nil, fmt.Errorf("submit score: %w", err)
	}
	return entries, nil
}

// Leaderboard fetches the top scores. A zero limit uses the server default.
func (c *Client) Leaderboard(limit int) ([]leaderboard.Entry, error) {
	path := "/api/leaderboard"
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}

	var entries []leaderboard.Entry
	if err := c.apiCall("GET", path, nil, &entries); err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	return entries, nil
}

// renderBoard draws the grid as ASCII art: @ head, o body, * food.
func renderBoard(state *engine.Snapshot) string {
	if state == nil {
		return "No game state available"
	}

	occupied := make(map[engine.Point]byte, len(state.Snake))
	for i, p := range state.Snake {
		if i == 0 {
			occupied[p] = '@'
		} else {
			occupied[p] = 'o'
		}
	}

	var b strings.Builder
	for y := 0; y < state.Height; y++ {
		for x := 0; x < state.Width; x++ {
			p := engine.Point{X: x, Y: y}
			switch {
			case occupied[p] != 0:
				b.WriteByte(occupied[p])
			case p == state.Food:
				b.WriteByte('*')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
