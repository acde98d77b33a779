// Package dfs implements the depth-first search with backtracking that
// solves a colored-arrow maze on an arrowgrid.Grid.
//
// The search runs on an explicit stack of (vertex, next-neighbor) frames,
// so deep boards cannot exhaust the goroutine stack. Traversal order and
// outcome are those of the plain recursive formulation:
//
//	solve(v):
//	  if v == target: return true
//	  mark v
//	  for d in N,E,S,W,NE,SE,SW,NW:
//	    n := v+d
//	    if in bounds, unmarked, color(v) != color(n):
//	      push d; if solve(n): return true; pop d
//	  unmark v
//	  return false
package dfs

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/arrowmaze/arrowgrid"
	"github.com/katalvlaran/arrowmaze/move"
)

// frame is one level of the simulated recursion.
type frame struct {
	v    arrowgrid.Vertex
	next int // index into move.Directions() of the next neighbor to try
}

// solver encapsulates state during one search.
type solver struct {
	grid    *arrowgrid.Grid
	opts    Options
	res     *Result
	visited []bool
	stack   []frame
	trace   bool
}

// Solve searches g for a path from (0,0) to (rows-1, cols-1) on which
// consecutive cells differ in color. The first path found is returned,
// not the shortest. A 1×1 grid succeeds with an empty path.
//
// Errors:
//   - ErrGridNil if g is nil.
//   - ErrNoPath if no path exists; Result carries the counters.
//   - ErrLimitExceeded if MaxSteps was reached.
//   - ctx.Err() on cancellation, or a wrapped OnVisit hook error.
func Solve(g *arrowgrid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	s := &solver{
		grid:    g,
		opts:    o,
		res:     &Result{},
		visited: make([]bool, g.Rows()*g.Cols()),
		trace:   debugEnabled(o.Logger),
	}

	err := s.run()
	log := o.Logger.WithFields(logrus.Fields{
		"rows":       g.Rows(),
		"cols":       g.Cols(),
		"steps":      s.res.Steps,
		"backtracks": s.res.Backtracks,
	})
	switch {
	case err == nil:
		log.WithField("moves", len(s.res.Path)).Info("dfs: path found")
	case errors.Is(err, ErrNoPath):
		log.Info("dfs: no path")
	default:
		log.WithError(err).Warn("dfs: search aborted")
	}

	return s.res, err
}

// run drives the frame stack until the target is on top or the stack is empty.
func (s *solver) run() error {
	dirs := move.Directions()
	target := s.grid.Target()

	if err := s.enter(s.grid.Start()); err != nil {
		return err
	}

	for len(s.stack) > 0 {
		select {
		case <-s.opts.Ctx.Done():
			return s.opts.Ctx.Err()
		default:
		}

		top := &s.stack[len(s.stack)-1]
		if top.v == target {
			s.collect()

			return nil
		}

		if top.next == len(dirs) {
			s.leave()
			continue
		}

		d := dirs[top.next]
		top.next++
		s.res.Steps++
		if s.opts.MaxSteps > 0 && s.res.Steps > s.opts.MaxSteps {
			return fmt.Errorf("%w: %d steps", ErrLimitExceeded, s.opts.MaxSteps)
		}

		cur := top.v
		dr, dc := d.Offset()
		next := cur.Add(dr, dc)
		if !s.grid.InBounds(next) || s.visited[s.grid.Index(next)] || !s.grid.Legal(cur, next) {
			continue
		}

		m, err := move.Encode(dr, dc)
		if err != nil {
			return fmt.Errorf("dfs: encoding %v->%v: %w", cur, next, err)
		}
		s.res.Path = append(s.res.Path, m)
		if s.trace {
			s.opts.Logger.WithFields(logrus.Fields{"from": cur.String(), "to": next.String(), "move": m.String()}).Debug("dfs: descend")
		}
		if err = s.enter(next); err != nil {
			return err
		}
	}

	s.res.Path = nil

	return ErrNoPath
}

// enter marks v visited and pushes its frame. The target is never marked:
// reaching it ends the search.
func (s *solver) enter(v arrowgrid.Vertex) error {
	if s.opts.OnVisit != nil {
		if err := s.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", v, err)
		}
	}
	if v != s.grid.Target() {
		s.visited[s.grid.Index(v)] = true
	}
	s.stack = append(s.stack, frame{v: v})

	return nil
}

// leave pops an exhausted frame, unmarks its vertex so other branches may
// reuse it, and truncates the move that led into it.
func (s *solver) leave() {
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.visited[s.grid.Index(top.v)] = false
	s.res.Backtracks++
	if len(s.stack) > 0 {
		s.res.Path = s.res.Path[:len(s.res.Path)-1]
	}
	if s.opts.OnBacktrack != nil {
		s.opts.OnBacktrack(top.v)
	}
	if s.trace {
		s.opts.Logger.WithField("at", top.v.String()).Debug("dfs: backtrack")
	}
}

// collect copies the vertices of the active stack into the result.
func (s *solver) collect() {
	s.res.Vertices = make([]arrowgrid.Vertex, len(s.stack))
	for i, f := range s.stack {
		s.res.Vertices[i] = f.v
	}
	if s.res.Path == nil {
		s.res.Path = []move.Move{}
	}
}

// debugEnabled avoids building per-step fields when nobody reads them.
func debugEnabled(l logrus.FieldLogger) bool {
	switch v := l.(type) {
	case *logrus.Logger:
		return v.IsLevelEnabled(logrus.DebugLevel)
	case *logrus.Entry:
		return v.Logger.IsLevelEnabled(logrus.DebugLevel)
	}

	return true
}
