package arrowgrid

import "fmt"

// DefaultMaxDimension is the largest accepted number of rows or columns.
const DefaultMaxDimension = 100

// Color is the cell color. The zero value ColorNone marks a cell without a
// color (the bull's-eye terminal cell in the arrow grammar).
type Color uint8

const (
	// ColorNone is carried by colorless cells.
	ColorNone Color = iota
	// Red is parsed from 'R'.
	Red
	// Blue is parsed from 'B'.
	Blue
)

// ParseColor maps the input letters 'R' and 'B' to a Color.
func ParseColor(c byte) (Color, error) {
	switch c {
	case 'R':
		return Red, nil
	case 'B':
		return Blue, nil
	}

	return ColorNone, fmt.Errorf("%w %q", ErrInvalidColor, c)
}

// String returns the input letter of the color ("R", "B") or "-" for ColorNone.
func (c Color) String() string {
	switch c {
	case Red:
		return "R"
	case Blue:
		return "B"
	}

	return "-"
}

// Label is the raw direction label of a cell: "N", "E", "S", "W", one of the
// diagonal codes "NE", "SE", "SW", "NW", the terminal marker "O", or empty.
type Label string

// TerminalLabel is the bull's-eye marker of the bottom-right cell.
const TerminalLabel Label = "O"

// Cell is one arrow of the maze. Immutable after the grid is built.
type Cell struct {
	Color Color
	Label Label
}

// String renders the cell in input notation, e.g. "R-NE" or "O".
func (c Cell) String() string {
	if c.Color == ColorNone {
		return string(c.Label)
	}
	if c.Label == "" {
		return c.Color.String()
	}

	return c.Color.String() + "-" + string(c.Label)
}

// Vertex is a 0-indexed (row, col) coordinate.
type Vertex struct {
	Row, Col int
}

// Add returns the vertex shifted by (dr, dc). The result is not bounds-checked.
func (v Vertex) Add(dr, dc int) Vertex {
	return Vertex{Row: v.Row + dr, Col: v.Col + dc}
}

// String formats the vertex as "(row,col)".
func (v Vertex) String() string {
	return fmt.Sprintf("(%d,%d)", v.Row, v.Col)
}

// Option configures NewGrid.
type Option func(*Options)

// Options holds tunable parameters for grid construction.
type Options struct {
	// MaxDimension caps rows and cols. Zero or negative disables the cap.
	MaxDimension int
}

// DefaultOptions returns Options with MaxDimension = DefaultMaxDimension.
func DefaultOptions() Options {
	return Options{MaxDimension: DefaultMaxDimension}
}

// WithMaxDimension sets the cap on rows and cols; n <= 0 removes it.
func WithMaxDimension(n int) Option {
	return func(o *Options) {
		o.MaxDimension = n
	}
}

// Grid is an immutable rows×cols board stored row-major.
type Grid struct {
	rows, cols int
	cells      []Cell
}
