package service

import (
	"context"

	"github.com/mtmal/snake-game-server/game/engine"
	"github.com/mtmal/snake-game-server/game/leaderboard"
	"github.com/mtmal/snake-game-server/game/session"
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	SetDirection(ctx context.Context, sessionID, direction string) (*engine.Snapshot, error)
	Tick(ctx context.Context, sessionID string) (*engine.Snapshot, error)
	AITick(ctx context.Context, sessionID string) (*engine.Snapshot, error)
	Reset(ctx context.Context, sessionID string) (*engine.Snapshot, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*engine.Snapshot, error)

	// Leaderboard
	SubmitScore(ctx context.Context, name string, score int) ([]leaderboard.Entry, error)
	GetLeaderboard(ctx context.Context, limit int) ([]leaderboard.Entry, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error)
	SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error
}

// SessionManager defines session registry operations
type SessionManager interface {
	Create(configName string, config *engine.GameConfig) (*session.Session, error)
	Get(id string) (*session.Session, error)
	List() []*session.Session
	Delete(id string) error
	Touch(id string) error
}

// ConfigManager handles game configuration loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.GameConfig
	SaveConfig(name string, config *engine.GameConfig) error
}

// ScoreBoard records finished scores and serves rankings
type ScoreBoard interface {
	Submit(name string, score int)
	Top(n int) []leaderboard.Entry
}
