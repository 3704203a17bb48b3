// Package config provides configuration management for the Snake Game Server.
//
// The config package handles:
//   - Loading game configurations from JSON files
//   - Configuration validation and caching
//   - Default configuration selection
//   - Configuration discovery and listing
//   - Persisting new configurations to disk
//
// Configuration Format:
//
// Game configurations are stored as JSON files in the configs directory.
// Each configuration defines:
//   - Board dimensions (grid_width, grid_height)
//   - The starting snake length (initial_length)
//   - Points awarded per food eaten (score_increment)
//   - An optional RNG seed for reproducible food placement (seed)
//
// Shipped Configurations:
//
// The repository ships a small set of rulesets:
//   - classic: the traditional 20x20 board, single-cell snake, one point per food
//   - arcade: a roomier board with a longer starting snake and bigger scores
//   - small: a cramped 10x10 board for quick games
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific configuration
//	gameConfig, err := manager.LoadConfig("arcade")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default configuration
//	defaultConfig := manager.GetDefault()
//
//	// List available configurations
//	configs, err := manager.ListConfigs()
//
// Defaults:
//
// The manager prefers classic.json as the default configuration, then the
// first loadable file in the directory, then the built-in classic ruleset,
// so a server with an empty config directory still starts.
//
// Validation:
//
// Every configuration is validated with engine.ValidateGameConfig before it
// is cached or saved: dimensions must fall within the engine's supported
// range, the starting snake must fit on the board, and the score increment
// must be positive.
package config
