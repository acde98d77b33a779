// Package emitter serializes a solved maze path as a stream of move tokens.
//
// Tokens are written in recorded order, separated by a single space by
// default. Empty slots (move.None) are skipped. There is no framing and no
// trailing newline. With WithTrailingSeparator every token is followed by the
// separator, matching the "tok tok " layout of older output files.
//
// WriteFile creates or truncates the destination; failing to open or write it
// returns an error wrapping ErrSinkUnavailable. Emission never changes the
// outcome of the search that produced the path.
package emitter
