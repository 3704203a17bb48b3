// Package session provides session management for the Snake Game Server.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Session lifecycle management
//   - Per-session locking for game mutations
//   - Session cleanup and expiration
//
// Core Types:
//
// Manager is the registry that handles all session operations. Session
// represents an individual game with its own engine instance and
// metadata like creation time and last access time.
//
// Session Identifiers:
//
// Sessions use UUIDs in canonical lowercase form, generated with
// github.com/google/uuid. IDs are never reused and clients cannot pick
// their own.
//
// Concurrency:
//
// The manager guards only its registry map; each Session carries its own
// lock for game access and for its last-accessed timestamp. Callers lock the session around every tick or
// heading change, which serializes operations on one game while letting
// games in other sessions proceed untouched. Sessions are never shared
// between games, so the two lock levels never nest the other way around.
//
// Usage:
//
//	manager := session.NewManager()
//
//	// Create a new session
//	sess, err := manager.Create("classic", config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Mutate its game exclusively
//	sess.Lock()
//	sess.Game.Tick()
//	sess.Unlock()
//
// Cleanup:
//
// Sessions live in memory only and disappear on restart. They can be
// explicitly deleted or expire based on inactivity via
// CleanupExpiredSessions, which the server runs on a timer.
package session
