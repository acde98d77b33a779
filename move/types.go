package move

import "errors"

var (
	// ErrInvalidDelta indicates a zero delta or one not on a compass ray.
	ErrInvalidDelta = errors.New("move: delta is not a compass step")
	// ErrInvalidToken indicates text that is not a move token.
	ErrInvalidToken = errors.New("move: invalid move token")
)

// Direction is one of the eight compass directions. The zero value None
// marks an empty path slot.
type Direction uint8

// Compass directions; None is the empty slot.
const (
	None Direction = iota
	N
	E
	S
	W
	NE
	SE
	SW
	NW
)

// order is the fixed neighbor order of the search.
var order = [8]Direction{N, E, S, W, NE, SE, SW, NW}

// offsets holds (dRow, dCol) per Direction, indexed by the Direction value.
var offsets = [9][2]int{
	None: {0, 0},
	N:    {-1, 0},
	E:    {0, 1},
	S:    {1, 0},
	W:    {0, -1},
	NE:   {-1, 1},
	SE:   {1, 1},
	SW:   {1, -1},
	NW:   {-1, -1},
}

var names = [9]string{"", "N", "E", "S", "W", "NE", "SE", "SW", "NW"}

// Move is one step of a path: a direction and a magnitude.
type Move struct {
	Dir   Direction
	Steps int
}
