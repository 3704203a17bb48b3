package engine

import "fmt"

// GameConfig represents the game configuration from JSON
type GameConfig struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	GridWidth      int    `json:"grid_width"`
	GridHeight     int    `json:"grid_height"`
	InitialLength  int    `json:"initial_length"`
	ScoreIncrement int    `json:"score_increment"`

	// Seed seeds the food placement RNG. Zero means seed from the clock,
	// which is what live games want; fixed seeds make runs reproducible.
	Seed int64 `json:"seed,omitempty"`
}

// ValidateGameConfig validates a game configuration for correctness and playability
func ValidateGameConfig(config *GameConfig) error {
	// Validate required fields
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	// Validate grid dimensions
	if config.GridWidth < MinGridSize || config.GridWidth > MaxGridSize {
		return fmt.Errorf("config validation: grid_width must be between %d and %d, got %d", MinGridSize, MaxGridSize, config.GridWidth)
	}
	if config.GridHeight < MinGridSize || config.GridHeight > MaxGridSize {
		return fmt.Errorf("config validation: grid_height must be between %d and %d, got %d", MinGridSize, MaxGridSize, config.GridHeight)
	}

	// Validate the starting snake. The body extends left from the center
	// cell, so it must fit between the center and the left edge.
	if config.InitialLength < MinInitialLength {
		return fmt.Errorf("config validation: initial_length must be at least %d, got %d", MinInitialLength, config.InitialLength)
	}
	if maxLen := config.GridWidth/2 + 1; config.InitialLength > maxLen {
		return fmt.Errorf("config validation: initial_length %d does not fit on a %d-wide grid (max %d)",
			config.InitialLength, config.GridWidth, maxLen)
	}

	// Validate scoring
	if config.ScoreIncrement < MinScoreIncrement {
		return fmt.Errorf("config validation: score_increment must be at least %d, got %d", MinScoreIncrement, config.ScoreIncrement)
	}

	if config.Seed < 0 {
		return fmt.Errorf("config validation: seed must not be negative, got %d", config.Seed)
	}

	return nil
}

// DefaultConfig returns the classic ruleset: a 20x20 board, a single-cell
// snake starting at the center heading right, and one point per food.
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Name:           "Classic",
		Description:    "The classic 20x20 board with a single-cell snake and one point per food.",
		GridWidth:      20,
		GridHeight:     20,
		InitialLength:  1,
		ScoreIncrement: 1,
	}
}
