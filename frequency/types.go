// Package frequency defines the Frequency value, options and sentinel errors.
package frequency

import (
	"errors"
	"fmt"
)

// Sentinel errors for frequency operations.
var (
	// ErrBadDelta indicates a delta line is not formatted as [+|-]<digits>.
	ErrBadDelta = errors.New("frequency: bad delta, expected +N or -N")

	// ErrEmptyDeltas indicates Calibrate was called without any deltas to cycle.
	ErrEmptyDeltas = errors.New("frequency: calibration needs at least one delta")

	// ErrNonConvergence indicates Calibrate found no repeated total within its bound.
	ErrNonConvergence = errors.New("frequency: calibration did not converge")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("frequency: invalid option supplied")
)

// DefaultMaxIterations bounds Calibrate when no WithMaxIterations is given.
const DefaultMaxIterations = 1_000_000

// Frequency is a running total. It is a plain value: every operation
// returns a new Frequency and never mutates the receiver.
type Frequency int

// Current returns the raw frequency value.
func (f Frequency) Current() int {
	return int(f)
}

// Apply returns f plus the sum of deltas. It is the method form of Sum.
func (f Frequency) Apply(deltas []int) Frequency {
	return Sum(f, deltas)
}

// Option configures Calibrate via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when Calibrate is invoked.
type Option func(*Options)

// Options holds the tunables for Calibrate.
type Options struct {
	// MaxIterations is the number of check-and-apply steps Calibrate may
	// take before giving up with ErrNonConvergence.
	MaxIterations int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with MaxIterations = DefaultMaxIterations.
func DefaultOptions() Options {
	return Options{MaxIterations: DefaultMaxIterations}
}

// WithMaxIterations overrides the calibration bound.
//
//	n > 0:  at most n delta applications
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxIterations must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}
