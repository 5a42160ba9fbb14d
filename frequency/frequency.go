package frequency

import "fmt"

// Sum returns initial plus every delta, folded left to right.
// An empty (or nil) deltas slice returns initial unchanged.
// Overflow follows native int semantics.
func Sum(initial Frequency, deltas []int) Frequency {
	cur := initial
	for _, d := range deltas {
		cur += Frequency(d)
	}

	return cur
}

// Calibrate replays deltas cyclically, starting at initial, and returns the
// first running total that has been seen before.
//
// Algorithm:
//  1. cur = initial, seen = {}.
//  2. For step i = 0, 1, 2, ... while i < MaxIterations:
//     if cur ∈ seen → return cur
//     seen ∪= {cur}
//     cur += deltas[i mod len(deltas)]
//  3. Bound reached → ErrNonConvergence.
//
// The initial value takes part in the search: [+1, -1] from 0 returns 0.
//
// Complexity: O(k) time and memory, k ≤ MaxIterations.
//
// Errors:
//   - ErrOptionViolation — an option was invalid.
//   - ErrEmptyDeltas     — deltas is empty.
//   - ErrNonConvergence  — no repeat within MaxIterations.
func Calibrate(initial Frequency, deltas []int, opts ...Option) (Frequency, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return initial, o.err
	}
	if len(deltas) == 0 {
		return initial, ErrEmptyDeltas
	}

	seen := make(map[Frequency]struct{})
	cur := initial
	for i := 0; i < o.MaxIterations; i++ {
		if _, ok := seen[cur]; ok {
			return cur, nil
		}
		seen[cur] = struct{}{}
		cur += Frequency(deltas[i%len(deltas)])
	}

	return initial, fmt.Errorf("%w: no repeat within %d iterations", ErrNonConvergence, o.MaxIterations)
}
