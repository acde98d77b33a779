// Package dfs defines types and options for the maze path search,
// including cancellation, visit/backtrack hooks, a step budget and logging.
package dfs

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/arrowmaze/arrowgrid"
	"github.com/katalvlaran/arrowmaze/move"
)

var (
	// ErrGridNil is returned when a nil *arrowgrid.Grid is passed to Solve.
	ErrGridNil = errors.New("dfs: grid is nil")

	// ErrNoPath indicates the search exhausted every branch from the start
	// without reaching the target. This is an expected outcome.
	ErrNoPath = errors.New("dfs: no path found")

	// ErrLimitExceeded indicates the search was aborted by the step budget.
	ErrLimitExceeded = errors.New("dfs: search aborted: limit exceeded")
)

// Option configures optional behavior of Solve.
type Option func(*Options)

// Options holds configurable parameters for the search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxSteps bounds the number of neighbor candidates examined.
	// Zero or negative means no bound.
	MaxSteps int

	// OnVisit, if non-nil, is invoked each time a vertex is entered,
	// including the start. Returning an error aborts the search.
	OnVisit func(v arrowgrid.Vertex) error

	// OnBacktrack, if non-nil, is invoked when a dead-end vertex is left
	// and unmarked.
	OnBacktrack func(v arrowgrid.Vertex)

	// Logger receives debug entries per descent and backtrack, and one
	// info entry per finished search. Defaults to a discarding logger.
	Logger logrus.FieldLogger
}

// DefaultOptions returns Options with a background context, no step bound,
// no hooks and a logger that discards everything.
func DefaultOptions() Options {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	return Options{
		Ctx:      context.Background(),
		MaxSteps: 0,
		Logger:   silent,
	}
}

// WithContext sets the Context for the search. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps bounds the search to n neighbor candidates; n <= 0 disables the bound.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// WithOnVisit installs fn as the vertex-entry hook.
func WithOnVisit(fn func(v arrowgrid.Vertex) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnBacktrack installs fn as the dead-end hook.
func WithOnBacktrack(fn func(v arrowgrid.Vertex)) Option {
	return func(o *Options) {
		o.OnBacktrack = fn
	}
}

// WithLogger routes search diagnostics to l. A nil logger has no effect.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result captures the outcome of a search. On ErrNoPath and
// ErrLimitExceeded only the counters are meaningful.
type Result struct {
	// Path is the dense, depth-indexed move list from start to target.
	Path []move.Move

	// Vertices lists the cells of the path, start and target included.
	Vertices []arrowgrid.Vertex

	// Steps counts neighbor candidates examined.
	Steps int

	// Backtracks counts dead-end vertices that were unmarked and left.
	Backtracks int
}
