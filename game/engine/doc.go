// Package engine provides the core game logic for the Snake Game Server.
//
// The engine package implements the game mechanics including:
//   - Grid geometry, bounds checking and uniform food placement
//   - Snake movement, growth and collision detection
//   - Heading changes with silent rejection of reversals
//   - Scoring and end-of-game freezing
//   - Configuration validation
//
// Core Types:
//
// Game is the state machine for a single snake game, created from a
// GameConfig and advanced one step at a time with Tick. Snapshot is the
// value copy of a game's externally visible state that the server layers
// hand to clients.
//
// Usage:
//
//	game, err := engine.NewGame(nil) // classic 20x20 rules
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	game.SetDirection(engine.Up)
//	game.Tick()
//	snapshot := game.Snapshot()
//
// Game Rules:
//
// The snake starts at the board's center heading right and advances one
// cell per tick. Eating the food grows the snake by one cell, adds the
// configured increment to the score and spawns new food on a uniformly
// random free cell. Hitting a wall or the snake's own body ends the game;
// moving onto the cell the tail is vacating in the same tick is legal.
// Once over, the game freezes: ticks and heading changes become no-ops
// until Reset.
//
// A Game is not synchronized. The session layer wraps each game in its
// own lock so concurrent sessions never contend with each other.
package engine
