// Command simulate benchmarks the greedy heuristic offline. It plays a
// batch of seeded games against every configuration in the configs
// directory and prints score, length, and tick statistics per config,
// flagging games the heuristic failed to finish. Fixed seeds make runs
// reproducible, so heuristic changes show up as stat changes.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mtmal/snake-game-server/game/ai"
	"github.com/mtmal/snake-game-server/game/config"
	"github.com/mtmal/snake-game-server/game/engine"
)

var (
	games    = flag.Int("games", 100, "Games to play per configuration")
	maxTicks = flag.Int("max-ticks", 10000, "Tick cap per game before it counts as stalled")
	baseSeed = flag.Int64("seed", 1, "Base seed; game i plays with seed+i")
)

// gameResult captures one finished (or stalled) game.
type gameResult struct {
	Score   int
	Length  int
	Ticks   int
	Stalled bool
}

// summary aggregates the results of one configuration's batch.
type summary struct {
	Games     int
	Stalled   int
	MinScore  int
	MaxScore  int
	AvgScore  float64
	AvgLength float64
	AvgTicks  float64
}

// runGame plays one game to completion with the greedy heuristic and a
// fixed seed. It stops after maxTicks so a heuristic that circles
// forever cannot hang the batch.
func runGame(cfg *engine.GameConfig, seed int64, maxTicks int) (gameResult, error) {
	// Copy before seeding; the caller's config may be shared.
	seeded := *cfg
	seeded.Seed = seed

	game, err := engine.NewGame(&seeded)
	if err != nil {
		return gameResult{}, err
	}

	ticks := 0
	for !game.GameOver() && ticks < maxTicks {
		game.SetDirection(ai.ChooseDirection(game))
		game.Tick()
		ticks++
	}

	return gameResult{
		Score:   game.Score(),
		Length:  game.Length(),
		Ticks:   ticks,
		Stalled: !game.GameOver(),
	}, nil
}

// summarize reduces a batch of results to min/avg/max statistics.
func summarize(results []gameResult) summary {
	s := summary{Games: len(results)}
	if len(results) == 0 {
		return s
	}

	s.MinScore = results[0].Score
	s.MaxScore = results[0].Score

	var scoreSum, lengthSum, tickSum int
	for _, r := range results {
		if r.Score < s.MinScore {
			s.MinScore = r.Score
		}
		if r.Score > s.MaxScore {
			s.MaxScore = r.Score
		}
		if r.Stalled {
			s.Stalled++
		}
		scoreSum += r.Score
		lengthSum += r.Length
		tickSum += r.Ticks
	}

	n := float64(len(results))
	s.AvgScore = float64(scoreSum) / n
	s.AvgLength = float64(lengthSum) / n
	s.AvgTicks = float64(tickSum) / n

	return s
}

func main() {
	flag.Parse()

	configDir := "configs"
	if flag.NArg() > 0 {
		configDir = flag.Arg(0)
	}

	manager, err := config.NewManager(configDir)
	if err != nil {
		fmt.Printf("Error loading configs from %s: %v\n", configDir, err)
		os.Exit(1)
	}

	infos, err := manager.ListConfigs()
	if err != nil {
		fmt.Printf("Error listing configs: %v\n", err)
		os.Exit(1)
	}
	if len(infos) == 0 {
		fmt.Printf("No config files found in %s\n", configDir)
		os.Exit(1)
	}

	fmt.Printf("Simulating %d game(s) per config (tick cap %d, base seed %d)\n", *games, *maxTicks, *baseSeed)

	for _, info := range infos {
		fmt.Printf("\n=== %s (%dx%d) ===\n", info.ConfigID, info.GridWidth, info.GridHeight)

		cfg, err := manager.LoadConfig(info.ConfigID)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			continue
		}

		results := make([]gameResult, 0, *games)
		for i := 0; i < *games; i++ {
			result, err := runGame(cfg, *baseSeed+int64(i), *maxTicks)
			if err != nil {
				fmt.Printf("Error running game %d: %v\n", i, err)
				break
			}
			results = append(results, result)
		}

		s := summarize(results)
		fmt.Printf("Score:  min %d / avg %.1f / max %d\n", s.MinScore, s.AvgScore, s.MaxScore)
		fmt.Printf("Length: avg %.1f segments\n", s.AvgLength)
		fmt.Printf("Ticks:  avg %.1f per game\n", s.AvgTicks)

		if s.Stalled > 0 {
			fmt.Printf("⚠️  %d/%d games hit the tick cap without ending\n", s.Stalled, s.Games)
		} else {
			fmt.Printf("✅ All %d games ran to game over\n", s.Games)
		}
	}
}
