package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mtmal/snake-game-server/game/engine"
)

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionAlreadyExists = errors.New("session already exists")
)

// Session is one independent game plus its registry metadata. The
// embedded lock serializes access to the game: hold it across a tick or
// a heading change so each operation is atomic with respect to other
// callers of the same session. The lock also guards LastAccessedAt,
// which Touch rewrites on every request. Distinct sessions lock
// independently and never contend with each other.
type Session struct {
	ID             string
	ConfigName     string
	Game           *engine.Game
	CreatedAt      time.Time
	LastAccessedAt time.Time

	mu sync.Mutex
}

// Lock acquires exclusive access to the session's game.
func (s *Session) Lock() {
	s.mu.Lock()
}

// Unlock releases exclusive access to the session's game.
func (s *Session) Unlock() {
	s.mu.Unlock()
}

// Manager handles game session lifecycle
type Manager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

// NewManager creates a new session manager
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

// Create starts a new session with a fresh game built from config and a
// generated UUID. Every call yields a distinct session; callers never
// supply their own IDs.
func (m *Manager) Create(configName string, config *engine.GameConfig) (*Session, error) {
	game, err := engine.NewGame(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	id := uuid.NewString()
	now := time.Now()
	session := &Session{
		ID:             id,
		ConfigName:     configName,
		Game:           game,
		CreatedAt:      now,
		LastAccessedAt: now,
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[id]; exists {
		return nil, ErrSessionAlreadyExists
	}
	m.sessions[id] = session

	return session, nil
}

// Get retrieves a session by ID. UUIDs are generated in canonical
// lowercase form, so lookups are exact-match.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, exists := m.sessions[id]
	if !exists {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// List returns all active sessions
func (m *Manager) List() []*Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		result = append(result, session)
	}

	return result
}

// Delete removes a session
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[id]; !exists {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)

	return nil
}

// Touch updates the last accessed time for a session. The write happens
// under the session's own lock so readers of LastAccessedAt never race
// with it.
func (m *Manager) Touch(id string) error {
	m.mu.RLock()
	session, exists := m.sessions[id]
	m.mu.RUnlock()

	if !exists {
		return ErrSessionNotFound
	}

	session.mu.Lock()
	session.LastAccessedAt = time.Now()
	session.mu.Unlock()

	return nil
}

// CleanupExpiredSessions removes sessions that haven't been accessed in the given duration
func (m *Manager) CleanupExpiredSessions(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0

	for id, session := range m.sessions {
		session.mu.Lock()
		expired := session.LastAccessedAt.Before(cutoff)
		session.mu.Unlock()

		if expired {
			delete(m.sessions, id)
			removed++
		}
	}

	return removed
}

// Count returns the number of active sessions
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
