package loader

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/arrowmaze/arrowgrid"
)

var (
	// ErrInvalidDimensions is arrowgrid.ErrInvalidDimensions, re-exported for callers of Parse.
	ErrInvalidDimensions = arrowgrid.ErrInvalidDimensions
	// ErrInvalidColor is arrowgrid.ErrInvalidColor, re-exported for callers of Parse.
	ErrInvalidColor = arrowgrid.ErrInvalidColor
	// ErrInvalidDirection indicates a direction label the grammar does not allow.
	ErrInvalidDirection = errors.New("loader: invalid arrow direction")
	// ErrInvalidToken indicates a cell token not shaped like C-D.
	ErrInvalidToken = errors.New("loader: invalid arrow data")
	// ErrMissingTerminal indicates the last cell is not the bull's-eye "O".
	ErrMissingTerminal = errors.New("loader: expected bull's-eye 'O' at the end of the maze")
	// ErrTruncated indicates fewer than rows*cols cell tokens.
	ErrTruncated = errors.New("loader: unexpected end of input")
	// ErrTrailingData indicates tokens after the last cell.
	ErrTrailingData = errors.New("loader: unexpected data after the last cell")
)

// ParseError locates a bad cell token.
type ParseError struct {
	Row, Col int
	Token    string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("loader: cell (%d, %d) %q: %v", e.Row, e.Col, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Grammar selects the accepted cell-token dialect.
type Grammar struct {
	// AllowDiagonalLabels accepts NE, SE, SW, NW in addition to N, E, S, W.
	AllowDiagonalLabels bool
	// RequireTerminalMarker demands the bull's-eye "O" as the last cell.
	RequireTerminalMarker bool
}

var (
	// BasicGrammar: compass labels only, no terminal marker.
	BasicGrammar = Grammar{}
	// ArrowGrammar: diagonal labels allowed, bull's-eye required.
	ArrowGrammar = Grammar{AllowDiagonalLabels: true, RequireTerminalMarker: true}
)

// GrammarByName maps "basic" and "arrow" to their presets.
func GrammarByName(name string) (Grammar, error) {
	switch name {
	case "basic":
		return BasicGrammar, nil
	case "arrow":
		return ArrowGrammar, nil
	}

	return Grammar{}, fmt.Errorf("loader: unknown grammar %q", name)
}

// Option configures Parse.
type Option func(*Options)

// Options holds parser settings.
type Options struct {
	Grammar      Grammar
	MaxDimension int
}

// DefaultOptions returns BasicGrammar with the 100×100 cap.
func DefaultOptions() Options {
	return Options{
		Grammar:      BasicGrammar,
		MaxDimension: arrowgrid.DefaultMaxDimension,
	}
}

// WithGrammar selects the token grammar.
func WithGrammar(g Grammar) Option {
	return func(o *Options) {
		o.Grammar = g
	}
}

// WithMaxDimension sets the cap on rows and cols; n <= 0 removes it.
func WithMaxDimension(n int) Option {
	return func(o *Options) {
		o.MaxDimension = n
	}
}
