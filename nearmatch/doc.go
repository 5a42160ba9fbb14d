// Package nearmatch finds the two box IDs that differ in exactly one
// position and returns the characters they share.
//
// What:
//
//   - DiffersByOne compares two IDs position by position.
//   - Find / FindPair scan every unordered pair (i < j) in list order and
//     stop at the first near match.
//
// Length policy:
//
//   - StrictLength (default): IDs of different length never match.
//   - Truncate (WithTruncate): compare up to the shorter length and ignore
//     the tail of the longer ID.
//
// Complexity:
//
//   - DiffersByOne: O(L) time, O(L) memory.
//   - Find:         O(n²·L) time, O(n·L) memory (IDs are decoded to runes once).
package nearmatch
