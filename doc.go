// Package arrowmaze solves colored-arrow mazes: boards of red and blue
// arrows where a path from the top-left to the bottom-right cell may only
// step between cells of different colors, in any of eight directions.
//
// What is inside?
//
//	• arrowgrid  the board: cells, colors, labels, bounds-checked access,
//	  the color-mismatch adjacency rule and a reachability pre-check
//	• move        compass directions, Move{Dir, Steps}, encode/decode, tokens
//	• dfs         depth-first search with backtracking on an explicit stack
//	• emitter     space-separated move tokens to a writer or a file
//	• loader      text input in the basic or the arrow (bull's-eye) grammar
//	• render      PNG picture of the board and the found path
//
// The command in cmd/arrowmaze wires them together:
//
//	loader.LoadFile → dfs.Solve → emitter.WriteFile (→ render.Render)
//
// Quick ASCII example:
//
//	R R        S E
//	B R   →
//
// From (0,0) east is blocked (same color), south is legal, then east
// reaches the target.
package arrowmaze
