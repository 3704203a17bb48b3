// Package ai picks moves for automated snake play.
//
// The heuristic is a greedy one-step lookahead: among the legal headings
// it takes the one whose next cell is closest to the food. It never
// searches further ahead, so it can box itself in on long snakes; that
// trade-off keeps automated ticks cheap and their outcome predictable.
package ai

import "github.com/mtmal/snake-game-server/game/engine"

// Game is the read-only view of a running game the heuristic needs:
// where the head and food are, which way the snake points, and whether a
// cell may be entered on the next tick. *engine.Game satisfies it.
type Game interface {
	Head() engine.Point
	Food() engine.Point
	Direction() engine.Direction
	CanEnter(p engine.Point) bool
}

// ChooseDirection returns the heading the snake should take on its next
// tick. Candidates are the four headings minus the reversal of the
// current one; candidates whose next cell would end the game are
// discarded using the same legality rule the engine applies, tail
// exclusion included. Among the survivors the one minimizing the
// Euclidean distance from the next cell to the food wins, with ties
// resolved in the fixed order up, down, left, right. When nothing is
// legal the current heading comes back and the snake drives into the
// obstacle, ending the game on the next tick.
func ChooseDirection(game Game) engine.Direction {
	reverse := game.Direction().Opposite()
	head := game.Head()
	food := game.Food()

	best := game.Direction()
	bestDist := -1

	for _, dir := range engine.Directions {
		if dir == reverse {
			continue
		}
		next := head.Add(dir)
		if !game.CanEnter(next) {
			continue
		}
		dist := distanceSq(next, food)
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = dir
		}
	}

	return best
}

// distanceSq is the squared Euclidean distance between two cells.
// Squaring preserves the ordering, so minimizing it minimizes the true
// distance without touching floating point.
func distanceSq(a, b engine.Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
