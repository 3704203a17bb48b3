package engine

import (
	"strings"
	"testing"
)

func createValidConfig() *GameConfig {
	return &GameConfig{
		Name:           "Test Config",
		Description:    "A valid test configuration",
		GridWidth:      10,
		GridHeight:     10,
		InitialLength:  1,
		ScoreIncrement: 1,
	}
}

func TestValidateGameConfig_ValidConfig(t *testing.T) {
	config := createValidConfig()
	err := ValidateGameConfig(config)
	if err != nil {
		t.Errorf("Expected valid config to pass validation, got: %v", err)
	}
}

func TestValidateGameConfig_MissingName(t *testing.T) {
	config := createValidConfig()
	config.Name = ""
	err := ValidateGameConfig(config)
	if err == nil {
		t.Error("Expected error for missing name")
	}
	if !strings.Contains(err.Error(), "name is required") {
		t.Errorf("Expected name validation error, got: %v", err)
	}
}

func TestValidateGameConfig_MissingDescription(t *testing.T) {
	config := createValidConfig()
	config.Description = ""
	err := ValidateGameConfig(config)
	if err == nil {
		t.Error("Expected error for missing description")
	}
	if !strings.Contains(err.Error(), "description is required") {
		t.Errorf("Expected description validation error, got: %v", err)
	}
}

func TestValidateGameConfig_InvalidGridDimensions(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		want   string
	}{
		{"width too small", 4, 10, "grid_width must be between"},
		{"width too large", 51, 10, "grid_width must be between"},
		{"height too small", 10, 4, "grid_height must be between"},
		{"height too large", 10, 51, "grid_height must be between"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := createValidConfig()
			config.GridWidth = test.width
			config.GridHeight = test.height
			err := ValidateGameConfig(config)
			if err == nil {
				t.Fatalf("Expected error for %dx%d grid", test.width, test.height)
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("Expected %q in error, got: %v", test.want, err)
			}
		})
	}
}

func TestValidateGameConfig_InvalidInitialLength(t *testing.T) {
	tests := []struct {
		name   string
		length int
		want   string
	}{
		{"zero length", 0, "initial_length must be at least"},
		{"negative length", -1, "initial_length must be at least"},
		{"longer than fits", 7, "does not fit"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := createValidConfig()
			config.InitialLength = test.length
			err := ValidateGameConfig(config)
			if err == nil {
				t.Fatalf("Expected error for initial length %d", test.length)
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("Expected %q in error, got: %v", test.want, err)
			}
		})
	}
}

func TestValidateGameConfig_InitialLengthBoundary(t *testing.T) {
	// On a 10-wide grid the body spans from the center at x=5 back to
	// x=0, so length 6 fits and length 7 does not.
	config := createValidConfig()
	config.InitialLength = 6
	if err := ValidateGameConfig(config); err != nil {
		t.Errorf("Expected length 6 to fit on 10-wide grid, got: %v", err)
	}

	config.InitialLength = 7
	if err := ValidateGameConfig(config); err == nil {
		t.Error("Expected length 7 to be rejected on 10-wide grid")
	}
}

func TestValidateGameConfig_InvalidScoreIncrement(t *testing.T) {
	config := createValidConfig()
	config.ScoreIncrement = 0
	err := ValidateGameConfig(config)
	if err == nil {
		t.Error("Expected error for zero score increment")
	}
	if !strings.Contains(err.Error(), "score_increment must be at least") {
		t.Errorf("Expected score increment validation error, got: %v", err)
	}
}

func TestValidateGameConfig_NegativeSeed(t *testing.T) {
	config := createValidConfig()
	config.Seed = -1
	err := ValidateGameConfig(config)
	if err == nil {
		t.Error("Expected error for negative seed")
	}
	if !strings.Contains(err.Error(), "seed must not be negative") {
		t.Errorf("Expected seed validation error, got: %v", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if err := ValidateGameConfig(config); err != nil {
		t.Fatalf("Expected default config to be valid, got: %v", err)
	}

	if config.GridWidth != 20 || config.GridHeight != 20 {
		t.Errorf("Expected 20x20 default grid, got %dx%d", config.GridWidth, config.GridHeight)
	}
	if config.InitialLength != 1 {
		t.Errorf("Expected default initial length 1, got %d", config.InitialLength)
	}
	if config.ScoreIncrement != 1 {
		t.Errorf("Expected default score increment 1, got %d", config.ScoreIncrement)
	}
	if config.Seed != 0 {
		t.Errorf("Expected default seed 0, got %d", config.Seed)
	}
}
