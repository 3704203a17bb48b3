package engine

import (
	"errors"
	"math/rand"
)

// ErrGridFull is returned by RandomEmptyCell when no free cell exists.
// The tick rules keep the snake strictly smaller than the grid, so seeing
// this error means the engine's own invariants were broken.
var ErrGridFull = errors.New("grid has no free cell")

// Grid is a fixed-size rectangular board. Cells are addressed from the
// top-left corner; the grid itself holds no occupancy state.
type Grid struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// InBounds reports whether p lies on the board.
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Center returns the board's center cell, rounding toward the top-left
// on even dimensions.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Cells returns the total number of cells on the board.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// RandomEmptyCell picks one cell uniformly at random among the cells not
// listed in occupied. It enumerates the free cells rather than rejection
// sampling, so every free cell has equal probability even on a nearly
// full board, and a full board fails immediately instead of looping.
func (g Grid) RandomEmptyCell(rng *rand.Rand, occupied []Point) (Point, error) {
	taken := make(map[Point]struct{}, len(occupied))
	for _, p := range occupied {
		taken[p] = struct{}{}
	}

	free := make([]Point, 0, g.Cells()-len(taken))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := Point{X: x, Y: y}
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		return Point{}, ErrGridFull
	}
	return free[rng.Intn(len(free))], nil
}
