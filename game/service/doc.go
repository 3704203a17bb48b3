// Package service provides the business logic layer for the Snake Game Server.
//
// The service package implements:
//   - Multi-session game management
//   - Manual, heading-change and AI-driven ticks
//   - Leaderboard submissions and rankings
//   - Configuration loading
//   - Session lifecycle management
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager manages game configuration loading and validation.
// ScoreBoard records scores and serves rankings.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP)
// and the game engine, providing session isolation, configuration
// management, and business logic orchestration. Each session maintains
// its own game instance with independent state, guarded by the session's
// own lock; the service itself holds no global lock, so load on one
// session never queues behind another.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	board := leaderboard.New(0)
//	gameService := service.NewGameService(sessionMgr, configMgr, board)
//
//	// Create a new session
//	sessionInfo, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Steer and advance
//	gameService.SetDirection(ctx, sessionInfo.ID, "up")
//	snapshot, err := gameService.Tick(ctx, sessionInfo.ID)
//
// Session Management:
//
// Sessions are identified by UUIDs and maintain independent game state.
// Multiple sessions can run concurrently with different configurations.
// Sessions track creation time and last access time, and an expiration
// sweep removes sessions idle past a configured age.
package service
