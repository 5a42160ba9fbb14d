package checksum

import "errors"

// ErrNotLowercase indicates an ID contains a rune outside 'a'..'z'.
var ErrNotLowercase = errors.New("checksum: id must contain only lowercase ascii letters")

// alphabet is the number of tally slots, one per letter a..z.
const alphabet = 26

// Profile is the letter-frequency tally of a single ID, indexed by letter-'a'.
type Profile [alphabet]int

// Count2And3 aggregates the "has a letter exactly twice" and
// "has a letter exactly three times" flags. For a single ID each field is
// 0 or 1; summed over a list it counts qualifying IDs.
type Count2And3 struct {
	Twos   int
	Threes int
}

// Add returns the field-wise sum of c and o.
func (c Count2And3) Add(o Count2And3) Count2And3 {
	return Count2And3{Twos: c.Twos + o.Twos, Threes: c.Threes + o.Threes}
}

// Product returns Twos × Threes, the checksum of the aggregated list.
func (c Count2And3) Product() int {
	return c.Twos * c.Threes
}
