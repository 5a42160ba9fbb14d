package nearmatch

// DiffersByOne reports whether a and b disagree in exactly one position.
// When they do, it returns the runes at the positions where they agree.
//
//	("fghij", "fguij") → "fgij", true
//	("fgij",  "fgij")  → "",     false   (no difference)
//	("fghijk","fguijl")→ "",     false   (two differences)
func DiffersByOne(a, b string, opts ...Option) (string, bool) {
	return differsByOne([]rune(a), []rune(b), resolve(opts))
}

func differsByOne(a, b []rune, o Options) (string, bool) {
	if len(a) != len(b) && o.Length == StrictLength {
		return "", false
	}
	n := min(len(a), len(b))
	miss := -1
	for i := 0; i < n; i++ {
		if a[i] == b[i] {
			continue
		}
		if miss >= 0 {
			return "", false
		}
		miss = i
	}
	if miss < 0 {
		return "", false
	}

	common := make([]rune, 0, n-1)
	common = append(common, a[:miss]...)
	common = append(common, a[miss+1:n]...)

	return string(common), true
}

// Find returns the common runes of the first near-matching pair.
// See FindPair for the scan order.
func Find(ids []string, opts ...Option) (string, bool) {
	m, ok := FindPair(ids, opts...)
	return m.Common, ok
}

// FindPair visits pairs (i, j) with i < j in increasing i, then increasing j,
// and returns the first pair for which DiffersByOne holds.
// Returns false when no pair qualifies, including for lists shorter than two.
func FindPair(ids []string, opts ...Option) (Match, bool) {
	o := resolve(opts)
	decoded := make([][]rune, len(ids))
	for i, id := range ids {
		decoded[i] = []rune(id)
	}
	for i := 0; i < len(decoded); i++ {
		for j := i + 1; j < len(decoded); j++ {
			if common, ok := differsByOne(decoded[i], decoded[j], o); ok {
				return Match{I: i, J: j, Common: common}, true
			}
		}
	}

	return Match{}, false
}
