package service

import (
	"time"

	"github.com/mtmal/snake-game-server/game/engine"
)

// DefaultLeaderboardLimit is how many entries score submissions and
// leaderboard reads return when the caller does not ask for a count.
const DefaultLeaderboardLimit = 10

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	State          *engine.Snapshot   `json:"state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// ConfigInfo provides information about a game configuration
type ConfigInfo struct {
	Filename       string `json:"filename"`
	ConfigID       string `json:"config_id"` // The identifier to use for session creation
	Name           string `json:"name"`      // Display name
	Description    string `json:"description"`
	GridWidth      int    `json:"grid_width"`
	GridHeight     int    `json:"grid_height"`
	InitialLength  int    `json:"initial_length"`
	ScoreIncrement int    `json:"score_increment"`
}
