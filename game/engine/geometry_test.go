package engine

import (
	"errors"
	"math/rand"
	"testing"
)

func TestGrid_InBounds(t *testing.T) {
	grid := Grid{Width: 10, Height: 8}

	tests := []struct {
		name  string
		point Point
		want  bool
	}{
		{"top-left corner", Point{X: 0, Y: 0}, true},
		{"bottom-right corner", Point{X: 9, Y: 7}, true},
		{"interior", Point{X: 4, Y: 4}, true},
		{"off left edge", Point{X: -1, Y: 0}, false},
		{"off top edge", Point{X: 0, Y: -1}, false},
		{"off right edge", Point{X: 10, Y: 0}, false},
		{"off bottom edge", Point{X: 0, Y: 8}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := grid.InBounds(test.point); got != test.want {
				t.Errorf("InBounds(%v) = %v, want %v", test.point, got, test.want)
			}
		})
	}
}

func TestGrid_Center(t *testing.T) {
	tests := []struct {
		grid Grid
		want Point
	}{
		{Grid{Width: 20, Height: 20}, Point{X: 10, Y: 10}},
		{Grid{Width: 5, Height: 5}, Point{X: 2, Y: 2}},
		{Grid{Width: 10, Height: 6}, Point{X: 5, Y: 3}},
	}

	for _, test := range tests {
		if got := test.grid.Center(); got != test.want {
			t.Errorf("Center of %dx%d = %v, want %v", test.grid.Width, test.grid.Height, got, test.want)
		}
	}
}

func TestGrid_RandomEmptyCell_AvoidsOccupied(t *testing.T) {
	grid := Grid{Width: 5, Height: 5}
	rng := rand.New(rand.NewSource(1))
	occupied := []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}}

	taken := make(map[Point]bool)
	for _, p := range occupied {
		taken[p] = true
	}

	for i := 0; i < 200; i++ {
		p, err := grid.RandomEmptyCell(rng, occupied)
		if err != nil {
			t.Fatalf("Unexpected error on draw %d: %v", i, err)
		}
		if !grid.InBounds(p) {
			t.Fatalf("Draw %d returned out-of-bounds cell %v", i, p)
		}
		if taken[p] {
			t.Fatalf("Draw %d returned occupied cell %v", i, p)
		}
	}
}

func TestGrid_RandomEmptyCell_SingleFreeCell(t *testing.T) {
	grid := Grid{Width: 3, Height: 3}
	rng := rand.New(rand.NewSource(1))

	// Occupy everything except the center.
	var occupied []Point
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 1 && y == 1 {
				continue
			}
			occupied = append(occupied, Point{X: x, Y: y})
		}
	}

	for i := 0; i < 20; i++ {
		p, err := grid.RandomEmptyCell(rng, occupied)
		if err != nil {
			t.Fatalf("Unexpected error with one free cell: %v", err)
		}
		if p != (Point{X: 1, Y: 1}) {
			t.Fatalf("Expected the only free cell {1 1}, got %v", p)
		}
	}
}

func TestGrid_RandomEmptyCell_FullGrid(t *testing.T) {
	grid := Grid{Width: 3, Height: 3}
	rng := rand.New(rand.NewSource(1))

	var occupied []Point
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			occupied = append(occupied, Point{X: x, Y: y})
		}
	}

	_, err := grid.RandomEmptyCell(rng, occupied)
	if err == nil {
		t.Fatal("Expected error on full grid")
	}
	if !errors.Is(err, ErrGridFull) {
		t.Errorf("Expected ErrGridFull, got: %v", err)
	}
}

func TestGrid_RandomEmptyCell_ReachesEveryFreeCell(t *testing.T) {
	grid := Grid{Width: 3, Height: 3}
	rng := rand.New(rand.NewSource(42))
	occupied := []Point{{X: 0, Y: 0}}

	seen := make(map[Point]bool)
	for i := 0; i < 500; i++ {
		p, err := grid.RandomEmptyCell(rng, occupied)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		seen[p] = true
	}

	// Every one of the 8 free cells should come up in 500 draws; a cell
	// that never appears means the selection is not uniform over free
	// cells.
	if len(seen) != grid.Cells()-len(occupied) {
		t.Errorf("Expected all %d free cells drawn, got %d", grid.Cells()-len(occupied), len(seen))
	}
}
