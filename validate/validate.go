// Command validate provides a small CLI that validates game configuration JSON
// files before they are deployed to a server's config directory. It checks:
//   - JSON structure (unknown fields are rejected, catching typos)
//   - Required name and description fields
//   - Grid dimensions within the supported range
//   - Starting snake length fits between the center and the left edge
//   - Score increment and seed constraints
//   - Playability: a game actually constructs from the config
//
// By default it scans ../configs; pass a directory argument to scan elsewhere.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mtmal/snake-game-server/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single configuration JSON file.
// Unlike the engine's validator it does not stop at the first problem;
// it reports everything wrong with the file in one pass.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config engine.GameConfig
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	// Validate required fields
	if config.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing required field: name")
	}
	if config.Description == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing required field: description")
	}

	// Validate grid dimensions
	if config.GridWidth < engine.MinGridSize || config.GridWidth > engine.MaxGridSize {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("grid_width must be between %d and %d, got %d", engine.MinGridSize, engine.MaxGridSize, config.GridWidth))
	}
	if config.GridHeight < engine.MinGridSize || config.GridHeight > engine.MaxGridSize {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("grid_height must be between %d and %d, got %d", engine.MinGridSize, engine.MaxGridSize, config.GridHeight))
	}

	// Validate the starting snake. The body extends left from the center
	// cell, so it must fit between the center and the left edge.
	if config.InitialLength < engine.MinInitialLength {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("initial_length must be at least %d, got %d", engine.MinInitialLength, config.InitialLength))
	} else if config.GridWidth >= engine.MinGridSize {
		if maxLen := config.GridWidth/2 + 1; config.InitialLength > maxLen {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("initial_length %d does not fit on a %d-wide grid (max %d)", config.InitialLength, config.GridWidth, maxLen))
		}
	}

	// Validate scoring and seed
	if config.ScoreIncrement < engine.MinScoreIncrement {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("score_increment must be at least %d, got %d", engine.MinScoreIncrement, config.ScoreIncrement))
	}
	if config.Seed < 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("seed must not be negative, got %d", config.Seed))
	}

	// Playability check: the config should produce a working game.
	if result.Valid {
		game, err := engine.NewGame(&config)
		if err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Game construction failed: %v", err))
			return result
		}
		snapshot := game.Snapshot()

		// Add informational data
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Grid: %dx%d (%d cells)", config.GridWidth, config.GridHeight, config.GridWidth*config.GridHeight))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Starting snake: %d segment(s), head at (%d,%d)", snapshot.Length(), snapshot.Head().X, snapshot.Head().Y))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Food placed at (%d,%d)", snapshot.Food.X, snapshot.Food.Y))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Score increment: %d", config.ScoreIncrement))
		if config.Seed != 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("✓ Fixed seed: %d (reproducible food placement)", config.Seed))
		}
	}

	return result
}

// main scans the config directory for *.json files and validates each one,
// printing a concise report and exiting with non-zero status if any are
// invalid.
func main() {
	configDir := "../configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	if len(files) == 0 {
		fmt.Printf("No config files found in %s\n", configDir)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
