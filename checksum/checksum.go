package checksum

import "fmt"

// Tally counts every letter of id.
func Tally(id string) (Profile, error) {
	var p Profile
	for i, r := range id {
		if r < 'a' || r > 'z' {
			return Profile{}, fmt.Errorf("%w: %q at byte %d of %q", ErrNotLowercase, r, i, id)
		}
		p[r-'a']++
	}

	return p, nil
}

// Classify reduces a tally to its presence flags.
func (p Profile) Classify() Count2And3 {
	var c Count2And3
	for _, n := range p {
		switch n {
		case 2:
			c.Twos = 1
		case 3:
			c.Threes = 1
		}
	}

	return c
}

// LetterProfile reports whether id has any letter exactly twice (Twos=1)
// and any letter exactly three times (Threes=1).
//
//	"bababc" → {1, 1}   "abcccd" → {0, 1}   "abcdef" → {0, 0}
func LetterProfile(id string) (Count2And3, error) {
	p, err := Tally(id)
	if err != nil {
		return Count2And3{}, err
	}

	return p.Classify(), nil
}

// Count sums LetterProfile over ids. The first invalid ID aborts the count.
func Count(ids []string) (Count2And3, error) {
	var total Count2And3
	for _, id := range ids {
		c, err := LetterProfile(id)
		if err != nil {
			return Count2And3{}, err
		}
		total = total.Add(c)
	}

	return total, nil
}

// Checksum returns Count(ids).Product(). An empty list yields 0.
func Checksum(ids []string) (int, error) {
	c, err := Count(ids)
	if err != nil {
		return 0, err
	}

	return c.Product(), nil
}
