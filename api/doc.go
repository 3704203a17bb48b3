// Package api provides the HTTP REST surface of the snake game server.
//
// The api package implements:
//   - RESTful endpoints for session and game operations
//   - Configuration listing and creation
//   - Leaderboard submission and ranking
//   - WebSocket upgrade handling
//   - Static file serving
//
// Endpoints:
//
// Session Management:
//   - POST   /api/sessions        - Create new session (optional config_id)
//   - GET    /api/sessions        - List sessions (sort, order, limit query)
//   - GET    /api/sessions/{id}   - Get one session
//   - DELETE /api/sessions/{id}   - Delete a session
//
// Game Operations:
//   - GET  /api/sessions/{id}/state     - Current board snapshot
//   - POST /api/sessions/{id}/direction - Buffer a heading for the next tick
//   - POST /api/sessions/{id}/tick      - Advance one step
//   - POST /api/sessions/{id}/ai-tick   - Let the move heuristic pick, then advance
//   - POST /api/sessions/{id}/reset     - Rebuild the game from its config
//
// Configuration:
//   - GET  /api/configs        - List available configurations
//   - POST /api/configs        - Save a new configuration
//   - GET  /api/configs/{name} - Get one configuration
//
// Leaderboard:
//   - POST /api/leaderboard          - Submit {name, score}, returns updated top
//   - GET  /api/leaderboard?limit=n  - Top entries in rank order
//
// Each game operation responds with the resulting engine.Snapshot and
// pushes the same snapshot to the session's WebSocket clients. A tick on
// a finished game returns the frozen final state; a reversal request is
// accepted with 200 and the snapshot shows the heading still in effect.
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{"error": "error message"}
//
// Unknown session or config names are 404, malformed bodies and unknown
// direction strings are 400.
package api
