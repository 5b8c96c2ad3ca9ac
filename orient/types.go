// Package orient encodes "no face of any tetrahedron is a directed 3-cycle"
// as a CNF over the edge classes of a triangulation and enumerates every
// satisfying edge orientation with a SAT backend.
//
// Variable v (1-based) is edge class v-1; true means the edge agrees with its
// baseline direction. An orientation is returned as a []int of ±1 per edge
// class. Successive models are excluded with a blocking clause over all
// variables, so the sequence is duplicate-free and ends when the backend
// reports the problem unsatisfiable.
//
// An Enumerator is single-use and not safe for concurrent use.
package orient

import (
	"errors"
	"fmt"
)

// Sentinel errors for encoding and enumeration.
var (
	// ErrNilTriangulation is returned when no triangulation is supplied.
	ErrNilTriangulation = errors.New("orient: triangulation is nil")

	// ErrUnknownBackend is returned for a backend name that is not registered.
	ErrUnknownBackend = errors.New("orient: unknown backend")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("orient: invalid option supplied")

	// ErrExhausted is returned by All when the enumerator was already drained.
	ErrExhausted = errors.New("orient: enumerator exhausted")

	// ErrBackend wraps a failure reported by the SAT backend.
	ErrBackend = errors.New("orient: backend failure")
)

// Backend names.
const (
	Gophersat = "gophersat"
	Gini      = "gini"
)

// DefaultBackend is used when no backend is chosen.
const DefaultBackend = Gophersat

// Option configures an Enumerator via functional arguments.
type Option func(*Options)

// Options holds enumeration parameters.
type Options struct {
	// Backend names the SAT solver: Gophersat or Gini.
	Backend string

	// Limit, if > 0, caps the number of orientations drawn.
	Limit int

	// SymmetryBreak adds the unit clause fixing edge class 0 positive.
	SymmetryBreak bool

	err error
}

// DefaultOptions returns the default backend, no limit and the symmetry
// breaking clause enabled.
func DefaultOptions() Options {
	return Options{Backend: DefaultBackend, SymmetryBreak: true}
}

// WithBackend selects the SAT backend by name. Unknown names surface as
// ErrUnknownBackend from NewEnumerator.
func WithBackend(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.Backend = name
		}
	}
}

// WithLimit caps the number of orientations drawn.
//
//	n > 0: stop after n orientations
//	n == 0: no limit
//	n < 0: invalid
func WithLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: limit must be >= 0, got %d", ErrOptionViolation, n)
			return
		}
		o.Limit = n
	}
}

// WithoutSymmetryBreak drops the unit clause fixing edge class 0, so every
// orientation appears together with its global negation.
func WithoutSymmetryBreak() Option {
	return func(o *Options) { o.SymmetryBreak = false }
}
