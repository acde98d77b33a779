// Package loader reads maze descriptions into an arrowgrid.Grid.
//
// Input layout (whitespace-separated):
//
//	rows cols
//	C-D C-D ... (rows*cols cell tokens, row-major)
//
// C is the color letter (R or B), D the direction label. What D may be, and
// how the last cell is spelled, depends on the Grammar:
//
//   - BasicGrammar: D is one of N, E, S, W; the last cell is a regular token.
//   - ArrowGrammar: D may also be NE, SE, SW or NW; the last cell must be the
//     bull's-eye marker "O" and carries no color.
//
// Syntax problems are reported before any search runs. Cell-level problems
// come back as *ParseError, which unwraps to one of the sentinel errors.
package loader
