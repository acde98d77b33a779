// Package dfs solves colored-arrow mazes with depth-first search and
// backtracking over the 8-neighborhood of an arrowgrid.Grid.
//
// What:
//
//   - Solve(g, opts...): find a path from the top-left to the bottom-right
//     cell such that consecutive cells differ in color.
//   - Neighbors are tried in the fixed order N, E, S, W, NE, SE, SW, NW; the
//     first path found is returned, which is not necessarily the shortest.
//   - A vertex is marked while it is on the active path and unmarked when
//     its branch dead-ends, so later branches may route through it again.
//   - The path is a dense, depth-indexed []move.Move; backtracking truncates it.
//
// Why:
//
//   - The unmark-on-backtrack policy finds paths that a permanently-visited
//     DFS would miss when an early branch wanders through a needed cell.
//
// Complexity:
//
//   - Time:   exponential in the worst case because cells can be re-explored
//     from different branches; bound it with WithMaxSteps or a context deadline.
//   - Memory: O(R×C) for the visited mask, frame stack and path.
//
// Options:
//
//   - WithContext(ctx)        cancellation and deadlines.
//   - WithMaxSteps(n)         abort with ErrLimitExceeded after n candidates.
//   - WithOnVisit(fn)         hook on vertex entry; an error aborts the search.
//   - WithOnBacktrack(fn)     hook on dead-end exit.
//   - WithLogger(l)           logrus sink for diagnostics.
//
// Errors:
//
//   - ErrGridNil              grid pointer is nil
//   - ErrNoPath               no path exists (normal outcome)
//   - ErrLimitExceeded        step budget exhausted
//   - context.Canceled / context.DeadlineExceeded
//   - hook errors             propagated from OnVisit
package dfs
