// Package checksum computes the box-ID checksum: the number of IDs holding
// some letter exactly twice, times the number holding some letter exactly
// three times.
//
// IDs must consist of lowercase ASCII letters only; any other rune is a
// contract violation reported as ErrNotLowercase.
//
// Complexity: O(total length) time, O(1) extra memory (a 26-slot tally).
package checksum
