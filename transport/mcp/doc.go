// Package mcp exposes the snake game to AI agents over the Model Context
// Protocol.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for game and leaderboard operations
//   - Session-aware command execution
//   - Stdio and HTTP transport modes
//
// The package is a thin client: every tool call is proxied to the REST
// API, so an MCP agent and a browser can drive the same session and the
// browser sees the agent's moves live over the WebSocket.
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - new_game: Create a new session with config selection
//   - game_state: Current board with ASCII visualization
//   - set_direction: Buffer a heading for the next tick
//   - tick: Advance one step in the current heading
//   - ai_tick: One heuristic-chosen step
//   - run: Repeated heuristic steps until game over or a tick limit
//   - reset_game: Reset a session to its initial state
//   - submit_score / leaderboard: Shared score table
//   - get_session / list_sessions: Session details and inventory
//   - list_configs: Available board configurations
//   - game_instructions: Full rules and strategy notes
//
// Transport Modes:
//
// The server supports two transport modes:
//   - Stdio: Direct stdio communication for local MCP clients
//   - HTTP: HTTP endpoint for remote MCP integration
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//
//	// Stdio mode
//	server.ServeStdio(client.GetMCPServer())
//
//	// HTTP mode
//	response := client.GetMCPServer().HandleMessage(ctx, body)
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Autonomously play the game
//   - Compare their own steering against the built-in heuristic
//   - Manage multiple concurrent game sessions
//   - Post finished scores to the shared leaderboard
package mcp
