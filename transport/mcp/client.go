package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mtmal/snake-game-server/game/engine"
	"github.com/mtmal/snake-game-server/game/leaderboard"
	"github.com/mtmal/snake-game-server/game/service"
)

// maxRunTicks bounds the run tool so a stuck heuristic cannot loop forever.
const maxRunTicks = 2000

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Snake Game Server",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Snake Game Server - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Steer the snake (@) to the food (*). Every food eaten grows the snake and
raises the score. Hitting a wall or your own body ends the game.

AVAILABLE TOOLS:
- new_game: Create a new game session
- game_state: Get the current board
- set_direction: Buffer a heading for the next tick - requires intent explanation
- tick: Advance the game one step
- ai_tick: Let the built-in heuristic pick a heading and advance one step
- run: Loop ai_tick until game over or a tick limit - requires intent explanation
- reset_game: Reset a session to its initial state
- submit_score: Record a finished score on the leaderboard
- leaderboard: Show the top scores
- get_session / list_sessions: Session details and inventory
- list_configs: List available board configurations
- game_instructions: Get comprehensive game instructions and rules

NOTE: The 'intent' parameter on set_direction/run tools serves as rubber duck debugging - explain your reasoning!`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "new_game",
		Description: "Create a new game session with optional config selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Name of the config to use (optional, e.g. classic, arcade, small)",
				},
			},
		},
	}, c.handleNewGame)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "set_direction",
		Description: "Buffer a heading for the next tick. Reversing into the neck is silently ignored.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"direction": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"up", "down", "left", "right"},
					"description": "Heading for the next tick",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this heading (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "direction"},
		},
	}, c.handleSetDirection)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "tick",
		Description: "Advance the game one step in the current heading",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleTick)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "ai_tick",
		Description: "Let the greedy move heuristic pick a heading, then advance one step",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleAITick)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "run",
		Description: "Run ai_tick repeatedly until the game ends or max_ticks is reached",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"max_ticks": map[string]interface{}{
					"type":        "integer",
					"description": "Tick limit for this call (default 100)",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this run (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleRun)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Reset the game to initial state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	// Leaderboard
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "submit_score",
		Description: "Record a finished score on the shared leaderboard",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Player name for the entry",
				},
				"score": map[string]interface{}{
					"type":        "integer",
					"description": "Final score to record",
				},
			},
			Required: []string{"name", "score"},
		},
	}, c.handleSubmitScore)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "leaderboard",
		Description: "Show the top scores in rank order",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "How many entries to show (default 10)",
				},
			},
		},
	}, c.handleLeaderboard)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available game configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

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

	resp, err := c.httpClient.Do(req)
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

// Tool handlers

func (c *Client) handleNewGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var sess service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &sess)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n\n%s",
		sess.ID, sess.ConfigName, formatSnapshot(sess.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		status := "running"
		score := 0
		if s.State != nil {
			score = s.State.Score
			if s.State.GameOver {
				status = "game over"
			}
		}
		result += fmt.Sprintf("- %s (Config: %s, Score: %d, %s, Created: %s)\n",
			s.ID, s.ConfigName, score, status, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var sess service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &sess)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&sess)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.Snapshot
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSnapshot(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleSetDirection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	direction, _ := args["direction"].(string)
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]interface{}{
		"direction": direction,
	}

	var state engine.Snapshot
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/direction", sessionID), body, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	header := fmt.Sprintf("✓ Heading set to %s\n", state.Direction)
	if string(state.Direction) != direction {
		header = fmt.Sprintf("✗ %s rejected (reversal or game over), heading stays %s\n",
			direction, state.Direction)
	}

	return mcp.NewToolResultText(header + "\n" + formatSnapshot(&state)), nil
}

func (c *Client) handleTick(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.Snapshot
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/tick", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSnapshot(&state)), nil
}

func (c *Client) handleAITick(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.Snapshot
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/ai-tick", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSnapshot(&state)), nil
}

func (c *Client) handleRun(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	maxTicks := 100
	if v, ok := args["max_ticks"].(float64); ok && int(v) > 0 {
		maxTicks = int(v)
	}
	if maxTicks > maxRunTicks {
		maxTicks = maxRunTicks
	}

	var state engine.Snapshot
	ticks := 0
	for ticks < maxTicks {
		if err := ctx.Err(); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/ai-tick", sessionID), nil, &state)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		ticks++

		if state.GameOver {
			break
		}
	}

	stop := "tick limit reached"
	if state.GameOver {
		stop = "game over"
	}
	result := fmt.Sprintf("Ran %d tick(s) — %s\n\n%s", ticks, stop, formatSnapshot(&state))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.Snapshot
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/reset", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Game reset successfully\n\n%s", formatSnapshot(&state))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleSubmitScore(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	name, _ := args["name"].(string)
	score := 0
	if v, ok := args["score"].(float64); ok {
		score = int(v)
	}

	body := map[string]interface{}{
		"name":  name,
		"score": score,
	}

	var entries []leaderboard.Entry
	err := c.apiCall("POST", "/api/leaderboard", body, &entries)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Recorded %d for %s\n\n%s", score, name, formatLeaderboard(entries))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleLeaderboard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})

	path := "/api/leaderboard"
	if v, ok := args["limit"].(float64); ok && int(v) > 0 {
		path += fmt.Sprintf("?limit=%d", int(v))
	}

	var entries []leaderboard.Entry
	err := c.apiCall("GET", path, nil, &entries)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatLeaderboard(entries)), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s (%s)\n  %s\n  Grid: %dx%d, Start length: %d, Points per food: %d\n\n",
			config.Name, config.ConfigID, config.Description,
			config.GridWidth, config.GridHeight, config.InitialLength, config.ScoreIncrement)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `🐍 Snake Game Server - Complete Instructions

GAME OBJECTIVE:
Steer the snake to the food. Every food eaten grows the snake by one
segment and adds the config's score increment. The game ends when the
snake's head hits a wall or its own body.

GAME MECHANICS:
• The game only advances when a tick is requested - there is no timer
• set_direction buffers a heading; the next tick moves the head one cell
• Reversing into your own neck is silently ignored (the heading keeps
  its previous value) - a snake cannot turn back on itself
• Eating food grows the tail: the snake keeps its tail cell that tick
• The tail cell is legal to move into UNLESS the snake is about to grow
• After game over the state is frozen; ticks return the same final board

BOARD LEGEND:
• @ - Snake head (your current position)
• o - Snake body segment
• * - Food
• . - Empty cell

Coordinates are zero-based with (0,0) at the top-left. "up" decreases y,
"down" increases y, "left" decreases x, "right" increases x.

🤖 AI AGENTS - PLAYING WELL:

1. **Read the board carefully**: The head (@) and food (*) positions in
   the state header are authoritative - use them rather than scanning
   the ASCII art.

2. **Plan against the NEXT board, not the current one**: When you move,
   the tail advances too (unless the snake eats). A cell occupied by the
   tail tip right now is usually safe to enter.

3. **Avoid dead ends**: The greedy heuristic (ai_tick) only looks one
   step ahead and will happily trap itself in a pocket of its own body.
   For long snakes, prefer paths that keep an escape route to the tail.

4. **Walls are lethal**: There is no wrap-around. A head at x=0 moving
   left dies.

5. **Use run for bulk play**: run drives ai_tick in a loop server-side
   turn by turn and reports the final board - efficient for letting the
   heuristic finish a game.

MOVEMENT COMMANDS:
- set_direction + tick - precise manual control, one step at a time
- ai_tick - one heuristic-chosen step
- run - repeated heuristic steps until game over or a tick limit

SCORING:
- Each food is worth the config's score_increment (classic: 1, arcade: 10)
- Submit finished scores with submit_score; the leaderboard keeps them
  ranked descending, ties in submission order

GAME OVER CONDITIONS:
- Head moves outside the grid
- Head moves into a body cell (tail exclusion applies)
- Game displays "💀 GAME OVER" when this occurs

CONFIGURATION OPTIONS:
- classic: 20x20 grid, start length 1, 1 point per food
- arcade: 24x24 grid, start length 3, 10 points per food
- small: 10x10 grid for quick games
- POST /api/configs or the server's config directory can add more

SESSION MANAGEMENT:
- Multiple game sessions can run simultaneously
- Each session has a unique ID and maintains independent state
- Sessions are in-memory only and vanish on server restart
- Idle sessions are reaped after the server's TTL

Good luck steering the snake! 🐍`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func formatSessionInfo(sess *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\nLast accessed: %s\n\n%s",
		sess.ID, sess.ConfigName,
		sess.CreatedAt.Format("2006-01-02 15:04:05"),
		sess.LastAccessedAt.Format("2006-01-02 15:04:05"),
		formatSnapshot(sess.State))
}

// formatSnapshot renders the board the way a terminal player would see
// it: header line, ASCII grid, then the game-over marker when frozen.
func formatSnapshot(state *engine.Snapshot) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder

	head := state.Head()
	result.WriteString(fmt.Sprintf("Head: (%d,%d) | Food: (%d,%d) | Heading: %s | Score: %d | Length: %d\n\n",
		head.X, head.Y, state.Food.X, state.Food.Y,
		state.Direction, state.Score, state.Length()))

	occupied := make(map[engine.Point]string, len(state.Snake))
	for i, p := range state.Snake {
		if i == 0 {
			occupied[p] = "@"
		} else {
			occupied[p] = "o"
		}
	}

	for y := 0; y < state.Height; y++ {
		for x := 0; x < state.Width; x++ {
			p := engine.Point{X: x, Y: y}
			if ch, ok := occupied[p]; ok {
				result.WriteString(ch)
			} else if p == state.Food {
				result.WriteString("*")
			} else {
				result.WriteString(".")
			}
		}
		result.WriteString("\n")
	}

	if state.GameOver {
		result.WriteString("\n💀 GAME OVER")
	}

	return result.String()
}

func formatLeaderboard(entries []leaderboard.Entry) string {
	if len(entries) == 0 {
		return "Leaderboard is empty - no scores submitted yet"
	}

	var b strings.Builder
	b.WriteString("🏆 Leaderboard:\n\n")
	for i, e := range entries {
		b.WriteString(fmt.Sprintf("%d. %s — %d\n", i+1, e.Name, e.Score))
	}
	return b.String()
}
