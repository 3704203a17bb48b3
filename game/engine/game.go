package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// Game is the state machine for a single snake game: the board, the snake
// body, the food cell, the heading and the score. It is not safe for
// concurrent use; callers that share a Game across goroutines must
// serialize access themselves.
type Game struct {
	grid      Grid
	snake     []Point // head first
	food      Point
	direction Direction
	score     int
	gameOver  bool

	rng    *rand.Rand
	config *GameConfig
}

// NewGame creates a game from the provided configuration. A nil config
// selects the classic ruleset. The snake starts at the board's center
// heading right, with the body extending left when the configured length
// is greater than one.
func NewGame(config *GameConfig) (*Game, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	game := &Game{
		grid:   Grid{Width: config.GridWidth, Height: config.GridHeight},
		config: config,
	}
	game.init()

	return game, nil
}

// init lays out the starting state. Reset routes through here too.
func (g *Game) init() {
	seed := g.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	head := g.grid.Center()
	g.snake = make([]Point, g.config.InitialLength)
	for i := range g.snake {
		g.snake[i] = Point{X: head.X - i, Y: head.Y}
	}
	g.direction = Right
	g.score = 0
	g.gameOver = false
	g.placeFood()
}

// placeFood puts the food on a uniformly random free cell. It panics on a
// full board: the tick rules keep the snake strictly smaller than the
// grid, so running out of cells is a bug in the engine, not a game state.
func (g *Game) placeFood() {
	p, err := g.grid.RandomEmptyCell(g.rng, g.snake)
	if err != nil {
		panic(fmt.Sprintf("engine: placing food on %dx%d grid with snake length %d: %v",
			g.grid.Width, g.grid.Height, len(g.snake), err))
	}
	g.food = p
}

// SetDirection requests a new heading for the next tick. The request is
// silently ignored when the game is over, when d is not a valid heading,
// or when d reverses the current heading; the previous heading stays in
// effect. The return value reports whether the heading changed, for
// callers that want to log or acknowledge it.
func (g *Game) SetDirection(d Direction) bool {
	if g.gameOver || !d.Valid() || d == g.direction.Opposite() {
		return false
	}
	g.direction = d
	return true
}

// CanEnter reports whether the head may move onto p on the next tick:
// p must be on the board and must not collide with the body. The tail
// cell does not count as a collision unless p is the food cell, because
// a non-growing move vacates the tail in the same tick the head advances.
func (g *Game) CanEnter(p Point) bool {
	if !g.grid.InBounds(p) {
		return false
	}

	body := len(g.snake)
	if p != g.food && body > 0 {
		body-- // tail moves out of the way
	}
	for _, seg := range g.snake[:body] {
		if seg == p {
			return false
		}
	}
	return true
}

// Tick advances the game one step in the current heading. Hitting a wall
// or the snake's own body ends the game and leaves the state frozen;
// reaching the food grows the snake by one cell, adds the configured
// increment to the score and spawns new food. Ticking a finished game is
// a no-op.
func (g *Game) Tick() {
	if g.gameOver {
		return
	}

	next := g.snake[0].Add(g.direction)
	if !g.CanEnter(next) {
		g.gameOver = true
		return
	}

	g.snake = append([]Point{next}, g.snake...)
	if next == g.food {
		g.score += g.config.ScoreIncrement
		g.placeFood()
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}
}

// Reset reinitializes the game from its configuration and returns the
// fresh state. A configured seed replays the same food sequence; a zero
// seed reseeds from the clock.
func (g *Game) Reset() Snapshot {
	g.init()
	return g.Snapshot()
}

// Snapshot returns a copy of the externally visible state. The snake
// slice is duplicated so later ticks never mutate a snapshot already
// handed out.
func (g *Game) Snapshot() Snapshot {
	snake := make([]Point, len(g.snake))
	copy(snake, g.snake)

	return Snapshot{
		Snake:     snake,
		Food:      g.food,
		Direction: g.direction,
		Score:     g.score,
		GameOver:  g.gameOver,
		Width:     g.grid.Width,
		Height:    g.grid.Height,
	}
}

// Head returns the snake's head cell.
func (g *Game) Head() Point {
	return g.snake[0]
}

// Length returns the snake's length in cells.
func (g *Game) Length() int {
	return len(g.snake)
}

// Food returns the current food cell.
func (g *Game) Food() Point {
	return g.food
}

// Direction returns the current heading.
func (g *Game) Direction() Direction {
	return g.direction
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// GameOver returns whether the game has ended.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Grid returns the board dimensions.
func (g *Game) Grid() Grid {
	return g.grid
}

// Config returns the configuration the game was created from.
func (g *Game) Config() *GameConfig {
	return g.config
}
