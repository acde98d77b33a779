// Package move encodes single steps of a maze path as compass tokens.
//
// The eight directions are kept in the fixed neighbor order used by the
// search: N, E, S, W, NE, SE, SW, NW. A Move pairs a Direction with a step
// magnitude (Steps, at least 1). Text is produced only at emission time:
//
//	Move{Dir: SE, Steps: 1}.Token(false) == "SE"
//	Move{Dir: SE, Steps: 1}.Token(true)  == "1SE"
//
// Encode and Delta are inverses for every delta lying on one of the eight
// rays; ParseToken is the inverse of Token.
package move
