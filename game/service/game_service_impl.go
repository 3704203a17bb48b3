package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mtmal/snake-game-server/game/ai"
	"github.com/mtmal/snake-game-server/game/engine"
	"github.com/mtmal/snake-game-server/game/leaderboard"
	"github.com/mtmal/snake-game-server/game/session"
)

// ErrInvalidDirection marks direction strings that do not name one of
// the four headings. Valid-but-rejected headings (reversals, input after
// game over) are not errors; the engine ignores those silently.
var ErrInvalidDirection = errors.New("invalid direction")

// gameServiceImpl implements the GameService interface. It holds no lock
// of its own: the session manager guards its registry and every game
// mutation happens under that session's lock, so traffic on one session
// never stalls another.
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	scores   ScoreBoard
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager, scores ScoreBoard) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
		scores:   scores,
	}
}

// getConfigID returns the config_id for a given config display name, used
// for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// sessionInfo builds the wire view of a session. It takes the session
// lock for the snapshot and the access time so a concurrent tick or
// Touch never shows through halfway.
func (s *gameServiceImpl) sessionInfo(sess *session.Session) *SessionInfo {
	sess.Lock()
	snapshot := sess.Game.Snapshot()
	lastAccessed := sess.LastAccessedAt
	sess.Unlock()

	return &SessionInfo{
		ID:             sess.ID,
		ConfigName:     sess.ConfigName,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: lastAccessed,
		State:          &snapshot,
		GameConfig:     sess.Game.Config(),
	}
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			// Provide a helpful error message with available options
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
		configName = s.getConfigID(config.Name)
	}

	sess, err := s.sessions.Create(configName, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return s.sessionInfo(sess), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.Touch(sessionID)

	return s.sessionInfo(sess), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess))
	}
	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(sessionID)
}

// SetDirection requests a heading change for the next tick. Strings that
// do not name a heading come back as ErrInvalidDirection; reversals and
// input on a finished game are accepted and silently ignored, with the
// returned snapshot showing the heading still in effect.
func (s *gameServiceImpl) SetDirection(ctx context.Context, sessionID, direction string) (*engine.Snapshot, error) {
	dir, ok := engine.ParseDirection(direction)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDirection, direction)
	}

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.Touch(sessionID)

	sess.Lock()
	defer sess.Unlock()

	sess.Game.SetDirection(dir)
	snapshot := sess.Game.Snapshot()
	return &snapshot, nil
}

// Tick advances a session's game one step in its current heading. On a
// finished game this is a no-op returning the frozen state.
func (s *gameServiceImpl) Tick(ctx context.Context, sessionID string) (*engine.Snapshot, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.Touch(sessionID)

	sess.Lock()
	defer sess.Unlock()

	sess.Game.Tick()
	snapshot := sess.Game.Snapshot()
	return &snapshot, nil
}

// AITick picks a heading with the move heuristic and advances one step,
// atomically: no other caller can slip between the heading change and
// the tick. On a finished game it skips the heuristic and returns the
// frozen state.
func (s *gameServiceImpl) AITick(ctx context.Context, sessionID string) (*engine.Snapshot, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.Touch(sessionID)

	sess.Lock()
	defer sess.Unlock()

	if !sess.Game.GameOver() {
		sess.Game.SetDirection(ai.ChooseDirection(sess.Game))
		sess.Game.Tick()
	}
	snapshot := sess.Game.Snapshot()
	return &snapshot, nil
}

// Reset reinitializes a session's game from its configuration
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.Snapshot, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.Touch(sessionID)

	sess.Lock()
	defer sess.Unlock()

	snapshot := sess.Game.Reset()
	return &snapshot, nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.Snapshot, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.Touch(sessionID)

	sess.Lock()
	defer sess.Unlock()

	snapshot := sess.Game.Snapshot()
	return &snapshot, nil
}

// SubmitScore records a score and returns the refreshed top of the
// leaderboard. Every submission is accepted, zero scores included.
func (s *gameServiceImpl) SubmitScore(ctx context.Context, name string, score int) ([]leaderboard.Entry, error) {
	s.scores.Submit(name, score)
	return s.scores.Top(DefaultLeaderboardLimit), nil
}

// GetLeaderboard returns the top entries in rank order. A non-positive
// limit falls back to the default page size.
func (s *gameServiceImpl) GetLeaderboard(ctx context.Context, limit int) ([]leaderboard.Entry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	return s.scores.Top(limit), nil
}

// ListConfigs returns available game configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific game configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig validates and persists a game configuration under the given
// name, making it available for new sessions.
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}
