// Package arrowgrid models the colored-arrow maze board: a rectangular grid
// of cells, each carrying a color and a decorative direction label.
//
// What:
//
//   - Grid wraps a rows×cols board in row-major contiguous storage.
//   - Every coordinate access is bounds-checked (Cell returns ErrOutOfBounds).
//   - CanMove is the adjacency rule: a step is legal iff the colors differ.
//   - Reachable answers whether the target is connected to the start at all,
//     using a BFS over the 8-neighborhood.
//
// Why:
//
//   - Path search (package dfs) needs read-only, cheap, bounds-safe lookups.
//   - A plain reachability pass rejects hopeless boards before the
//     exponential-worst-case search starts.
//
// Complexity:
//
//   - NewGrid:   O(R×C) time and memory (deep copy).
//   - Cell:      O(1).
//   - Reachable: O(R×C×8) time, O(R×C) memory.
//
// Options:
//
//   - WithMaxDimension(n): cap on rows and cols (default 100, 0 disables the cap).
//
// Errors:
//
//   - ErrInvalidDimensions: no rows, no columns, or a side above the cap.
//   - ErrNonRectangular:    rows have differing lengths.
//   - ErrOutOfBounds:       a vertex lies outside [0,rows)×[0,cols).
//
// Direction labels are parsed and kept on every cell but are not consulted
// by CanMove; only colors decide legality.
package arrowgrid
