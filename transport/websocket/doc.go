// Package websocket pushes live board snapshots to browser clients.
//
// The websocket package implements:
//   - Session-aware WebSocket connections
//   - Snapshot broadcasting after every game mutation
//   - Connection lifecycle management (ping/pong, slow-client eviction)
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub groups
// connections by session ID. Each connection runs a read pump and a write
// pump goroutine; the hub fans messages out to the per-session client set.
//
// Message Protocol:
//
// Frames are JSON-encoded Message values. A snapshot push looks like:
//
//	{"session_id": "abc1", "event": "state_update", "state": {...}}
//
// where state is the full engine.Snapshot (snake, food, direction, score,
// game_over, width, height). Lifecycle events such as session deletion use
// the event and data fields without a state.
//
// Clients do not send game commands over the socket; moves go through the
// REST API, and the resulting snapshot is broadcast here. The read pump
// exists only to detect disconnects and answer pings.
//
// Session Integration:
//
// Clients specify their session ID via query parameter (?session=abc1)
// when establishing the connection. Snapshots are broadcast only to clients
// watching the same session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// after a successful tick/direction/reset:
//	hub.BroadcastToSession(sessionID, snapshot)
//
// Concurrency:
//
// Broadcasts run synchronously from HTTP handler goroutines while the hub's
// run loop services registration channels, so the session map is guarded by
// a mutex. A client whose send buffer is full is dropped rather than letting
// one slow reader stall a session's updates.
package websocket
