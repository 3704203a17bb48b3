// Command autoplay plays snake against a running game server. It creates
// or resumes a session over the REST API, drives it with the server-side
// heuristic one ai-tick at a time, and can submit the final score to the
// shared leaderboard. The session id is cached in a .session file so
// repeated runs keep appearing on the same browser view.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/mtmal/snake-game-server/game/leaderboard"
)

// sessionFile caches the last session id between runs.
const sessionFile = ".session"

func main() {
	cmd := &cli.Command{
		Name:  "autoplay",
		Usage: "Drive snake sessions on a running game server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "url",
				Value: "http://localhost:8080",
				Usage: "Game server URL",
			},
		},
		Commands: []*cli.Command{
			playCommand(),
			leaderboardCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "Create or resume a session and let the heuristic play it out",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Config id for new sessions (empty = server default)",
			},
			&cli.StringFlag{
				Name:  "session",
				Usage: "Resume an existing session by id",
			},
			&cli.IntFlag{
				Name:  "max-ticks",
				Value: 1000,
				Usage: "Stop after this many ticks even if the game is still going",
			},
			&cli.IntFlag{
				Name:  "delay",
				Value: 0,
				Usage: "Delay between ticks in milliseconds (0 = no delay)",
			},
			&cli.StringFlag{
				Name:  "submit",
				Usage: "Submit the final score to the leaderboard under this name",
			},
			&cli.BoolFlag{
				Name:  "fresh",
				Usage: "Ignore the saved .session file and start a new session",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log progress during play",
			},
		},
		Action: runPlay,
	}
}

func leaderboardCommand() *cli.Command {
	return &cli.Command{
		Name:  "leaderboard",
		Usage: "Print the shared leaderboard",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Value: 0,
				Usage: "Number of entries to fetch (0 = server default)",
			},
		},
		Action: runLeaderboard,
	}
}

// resolveSession picks the session to play: an explicit --session id wins,
// then the cached .session file unless --fresh, then a new session. It
// reports whether a new session was created.
func resolveSession(client *Client, cmd *cli.Command) (created bool, err error) {
	sessionID := cmd.String("session")
	if sessionID == "" && !cmd.Bool("fresh") {
		if data, readErr := os.ReadFile(sessionFile); readErr == nil {
			sessionID = strings.TrimSpace(string(data))
		}
	}

	if sessionID != "" {
		client.sessionID = sessionID
		if _, err := client.GetSession(); err == nil {
			log.Printf("🔄 Resuming session: %s", sessionID)
			return false, nil
		}
		log.Printf("⚠️  Session %s not found (may be expired), creating a new one", sessionID)
	}

	info, err := client.CreateSession(cmd.String("config"))
	if err != nil {
		return false, err
	}
	log.Printf("✨ Session created: %s (config %s)", info.ID, info.ConfigName)

	if err := os.WriteFile(sessionFile, []byte(info.ID), 0644); err != nil {
		log.Printf("Warning: Failed to save session id: %v", err)
	}
	return true, nil
}

func runPlay(ctx context.Context, cmd *cli.Command) error {
	client := NewClient(cmd.String("url"))
	log.Printf("Connecting to game server at %s", client.baseURL)

	created, err := resolveSession(client, cmd)
	if err != nil {
		return fmt.Errorf("resolve session: %w", err)
	}

	info, err := client.GetSession()
	if err != nil {
		return fmt.Errorf("load session state: %w", err)
	}
	state := info.State

	// A resumed session may already be finished; start it over.
	if !created && state.GameOver {
		log.Printf("🔄 Session is game over, resetting...")
		state, err = client.Reset()
		if err != nil {
			return fmt.Errorf("reset finished session: %w", err)
		}
	}

	log.Printf("Grid: %dx%d, Score: %d, Length: %d", state.Width, state.Height, state.Score, state.Length())

	maxTicks := cmd.Int("max-ticks")
	delay := time.Duration(cmd.Int("delay")) * time.Millisecond
	verbose := cmd.Bool("verbose")

	ticks := 0
	for !state.GameOver && ticks < maxTicks {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		state, err = client.AITick()
		if err != nil {
			return fmt.Errorf("tick %d: %w", ticks, err)
		}
		ticks++

		if verbose && ticks%25 == 0 {
			log.Printf("Tick %d: head (%d,%d), score %d, length %d",
				ticks, state.Head().X, state.Head().Y, state.Score, state.Length())
		}

		if delay > 0 {
			time.Sleep(delay)
		}
	}

	fmt.Println()
	fmt.Print(renderBoard(state))
	fmt.Println()

	if state.GameOver {
		log.Printf("💀 Game over after %d tick(s) - final score %d, length %d", ticks, state.Score, state.Length())
	} else {
		log.Printf("⏱️  Tick limit reached after %d tick(s) - score %d, length %d", ticks, state.Score, state.Length())
	}
	log.Printf("Session: %s", client.sessionID)

	if name := cmd.String("submit"); name != "" {
		entries, err := client.SubmitScore(name, state.Score)
		if err != nil {
			return fmt.Errorf("submit score: %w", err)
		}
		log.Printf("🏆 Submitted %d for %s", state.Score, name)
		printLeaderboard(entries)
	}

	return nil
}

func runLeaderboard(ctx context.Context, cmd *cli.Command) error {
	client := NewClient(cmd.String("url"))

	entries, err := client.Leaderboard(cmd.Int("limit"))
	if err != nil {
		return err
	}

	printLeaderboard(entries)
	return nil
}

func printLeaderboard(entries []leaderboard.Entry) {
	if len(entries) == 0 {
		fmt.Println("Leaderboard is empty - no scores submitted yet")
		return
	}

	fmt.Println("🏆 Leaderboard:")
	for i, entry := range entries {
		fmt.Printf("%2d. %s — %d\n", i+1, entry.Name, entry.Score)
	}
}
