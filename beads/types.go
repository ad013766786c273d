// Package beads: tunable options and error definitions for the
// minimal-rotation finder.
package beads

import (
	"errors"
	"fmt"
)

// DefaultMaxLen is the largest accepted input length unless overridden
// with WithMaxLen. It matches the source judge's declared bound.
const DefaultMaxLen = 10_000_000

// Sentinel errors for MinRotation.
var (
	// ErrInvalidInput is returned for any rejected input: empty string,
	// length above the configured maximum, or a byte outside the symbol
	// class. The wrapped message carries the concrete reason.
	ErrInvalidInput = errors.New("beads: invalid input")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("beads: invalid option supplied")
)

// Algorithm selects the rotation-finding strategy.
type Algorithm int

const (
	// Booth is the linear-time production strategy.
	Booth Algorithm = iota

	// Duel is the quadratic-worst-case reference strategy, retained as
	// an independently verifiable oracle for tests and spot checks.
	Duel
)

// String returns the strategy name.
func (a Algorithm) String() string {
	switch a {
	case Booth:
		return "Booth"
	case Duel:
		return "Duel"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Option configures MinRotation via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when MinRotation is invoked.
type Option func(*options)

// options holds the resolved MinRotation configuration.
type options struct {
	algorithm Algorithm
	maxLen    int
	alphabet  func(byte) bool

	// internal error recorded during option parsing
	err error
}

// defaultOptions returns the baseline configuration:
// Booth strategy, DefaultMaxLen bound, lowercase a..z symbol class.
func defaultOptions() options {
	return options{
		algorithm: Booth,
		maxLen:    DefaultMaxLen,
		alphabet:  func(b byte) bool { return b >= 'a' && b <= 'z' },
	}
}

// WithAlgorithm selects the strategy. Unknown values are a violation.
func WithAlgorithm(a Algorithm) Option {
	return func(o *options) {
		switch a {
		case Booth, Duel:
			o.algorithm = a
		default:
			o.err = fmt.Errorf("%w: unknown algorithm %d", ErrOptionViolation, int(a))
		}
	}
}

// WithMaxLen overrides the maximum accepted input length.
//
//	n > 0: accept inputs up to n bytes
//	n ≤ 0: invalid option → ErrOptionViolation
func WithMaxLen(n int) Option {
	return func(o *options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxLen must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.maxLen = n
	}
}

// WithAlphabet replaces the symbol-class predicate. The algorithms only
// require a total order on bytes, so any class is acceptable; nil keeps
// the default lowercase class.
func WithAlphabet(fn func(byte) bool) Option {
	return func(o *options) {
		if fn != nil {
			o.alphabet = fn
		}
	}
}
