package engine

// Direction is one of the four cardinal headings the snake can travel in.
// The zero value is not a valid direction.
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// Validation constants
const (
	MinGridSize       = 5
	MaxGridSize       = 50
	MinInitialLength  = 1
	MinScoreIncrement = 1
)

// Directions lists every heading in a fixed priority order. The move
// heuristic and anything else that iterates headings ranges over this
// slice so tie-breaks stay deterministic.
var Directions = []Direction{Up, Down, Left, Right}

// ParseDirection converts a wire string into a Direction. Matching is
// case-insensitive so clients can send "UP" or "up" interchangeably.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up", "Up", "UP":
		return Up, true
	case "down", "Down", "DOWN":
		return Down, true
	case "left", "Left", "LEFT":
		return Left, true
	case "right", "Right", "RIGHT":
		return Right, true
	}
	return "", false
}

// Valid reports whether d is one of the four cardinal headings.
func (d Direction) Valid() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// Opposite returns the reversal of d. Invalid directions map to the empty
// string, which never compares equal to a valid heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return ""
}

// Delta returns the unit translation for d. The origin is the top-left
// corner, so Up means y-1 and Down means y+1.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Point represents x,y coordinates of a single grid cell
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the cell one step from p in direction d. There is no
// wrapping; the result may lie outside the grid and callers are expected
// to bounds-check it.
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Snapshot is the externally visible state of one game at a point in
// time. It is a value copy: mutating a snapshot never touches the live
// game, and two snapshots taken after the game ended are identical.
type Snapshot struct {
	Snake     []Point   `json:"snake"`
	Food      Point     `json:"food"`
	Direction Direction `json:"direction"`
	Score     int       `json:"score"`
	GameOver  bool      `json:"game_over"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
}

// Head returns the snake's head cell. The engine never produces an empty
// snake, so this is safe on any snapshot it hands out.
func (s *Snapshot) Head() Point {
	return s.Snake[0]
}

// Length returns the snake's length in cells.
func (s *Snapshot) Length() int {
	return len(s.Snake)
}
