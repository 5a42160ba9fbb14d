package frequency

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2018/lines"
)

// ParseDelta parses a single delta formatted as an optional sign followed by
// decimal digits ("+3", "-6", "12"). Anything else, including surrounding
// spaces, fails with ErrBadDelta. A trailing '\r' is ignored.
func ParseDelta(s string) (int, error) {
	s = strings.TrimSuffix(s, "\r")
	digits := s
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		digits = digits[1:]
	}
	if digits == "" {
		return 0, fmt.Errorf("%w: %q", ErrBadDelta, s)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrBadDelta, s)
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		// only range errors reach here
		return 0, fmt.Errorf("%w: %q: %v", ErrBadDelta, s, err)
	}

	return v, nil
}

// ReadDeltas parses every line of r as a delta. It stops at the first
// malformed line; the error wraps ErrBadDelta and names the line number.
func ReadDeltas(r io.Reader) ([]int, error) {
	var deltas []int
	err := lines.Each(r, func(n int, line string) error {
		d, err := ParseDelta(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
		deltas = append(deltas, d)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deltas, nil
}

// SumReader folds the deltas of r into initial without holding them in memory.
func SumReader(initial Frequency, r io.Reader) (Frequency, error) {
	cur := initial
	err := lines.Each(r, func(n int, line string) error {
		d, err := ParseDelta(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
		cur += Frequency(d)
		return nil
	})
	if err != nil {
		return initial, err
	}

	return cur, nil
}
