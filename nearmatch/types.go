package nearmatch

// LengthPolicy selects how IDs of different length are compared.
type LengthPolicy int

const (
	// StrictLength treats IDs of different length as never matching.
	StrictLength LengthPolicy = iota
	// Truncate compares only the first min(len(a), len(b)) runes.
	Truncate
)

// String implements fmt.Stringer.
func (p LengthPolicy) String() string {
	switch p {
	case StrictLength:
		return "strict"
	case Truncate:
		return "truncate"
	default:
		return "unknown"
	}
}

// Option configures a comparison.
type Option func(*Options)

// Options holds comparison parameters.
type Options struct {
	Length LengthPolicy
}

// DefaultOptions returns Options{Length: StrictLength}.
func DefaultOptions() Options {
	return Options{Length: StrictLength}
}

// WithTruncate switches to the Truncate length policy.
func WithTruncate() Option {
	return func(o *Options) {
		o.Length = Truncate
	}
}

// Match is a near match found by FindPair.
type Match struct {
	I, J   int    // indices of the pair in the input, I < J
	Common string // runes shared by both IDs, in order
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
