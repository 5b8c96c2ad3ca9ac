// Package taut analyzes a cycle-free edge orientation of a triangulation:
// the local structure at every tetrahedron corner, long and super-long edge
// classes, the suture graph and its tautness certificates, and the Euler
// class of the carried branched surface.
//
// An EdgeOrientation is either Closed (every vertex link a sphere) or Ideal
// (one vertex class with a torus link and a peripheral framing). Shared
// helpers take the triangulation and the sign vector explicitly so that
// they can be used without building an EdgeOrientation.
//
// Errors:
//
//	ErrPrecondition - wrong variant, invalid signs, or a query that needs a
//	                  taut orientation first.
//	ErrInvariant    - an internal consistency check failed.
package taut

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/foliar/core"
	"github.com/katalvlaran/foliar/dual"
	"github.com/katalvlaran/foliar/orient"
	"github.com/katalvlaran/foliar/peripheral"
	"github.com/katalvlaran/foliar/triangulation"
)

// Sentinel errors for the analyzer.
var (
	ErrPrecondition = errors.New("taut: precondition violated")
	ErrInvariant    = errors.New("taut: invariant violated")
)

// Kind tells which variant of analysis an EdgeOrientation supports.
type Kind int

const (
	// Closed orientations live on triangulations whose vertex links are spheres.
	Closed Kind = iota
	// Ideal orientations live on one-cusped triangulations with a framing.
	Ideal
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Closed:
		return "closed"
	case Ideal:
		return "ideal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Structure is the local structure at one tetrahedron corner: how many of
// the three incident tetrahedron edges point away from it and towards it.
type Structure struct {
	Out, In int
}

// EdgeOrientation is a cycle-free orientation together with the data its
// kind needs. It is safe for concurrent use; derived data is computed once.
type EdgeOrientation struct {
	kind  Kind
	tri   *triangulation.Triangulation
	signs []int

	sutureOnce  sync.Once
	suture      *core.Graph
	sutureMixed int
	sutureErr   error

	// ideal only
	framing   *peripheral.Framing
	cell      *dual.Cellulation
	idealOnce sync.Once
	sutures   []dual.OneCycle
	slopes    []peripheral.Slope
	idealErr  error
}

// NewClosed returns the closed analysis of signs on tri. Every vertex link of
// tri must be a sphere and signs must be a cycle-free orientation. signs is
// copied.
func NewClosed(tri *triangulation.Triangulation, signs []int) (*EdgeOrientation, error) {
	if tri == nil {
		return nil, fmt.Errorf("%w: nil triangulation", ErrPrecondition)
	}
	closed, err := tri.IsClosed()
	if err != nil {
		return nil, err
	}
	if !closed {
		return nil, fmt.Errorf("%w: triangulation has a non-sphere vertex link", ErrPrecondition)
	}
	if !orient.CycleFree(tri, signs) {
		return nil, fmt.Errorf("%w: signs are not a cycle-free orientation", ErrPrecondition)
	}

	return &EdgeOrientation{kind: Closed, tri: tri, signs: append([]int(nil), signs...)}, nil
}

// NewIdeal returns the ideal analysis of signs on tri, measured against
// framing. tri must be one-cusped and framing must live on the dual
// cellulation of its cusp link.
func NewIdeal(tri *triangulation.Triangulation, signs []int, framing *peripheral.Framing) (*EdgeOrientation, error) {
	if tri == nil || framing == nil {
		return nil, fmt.Errorf("%w: nil triangulation or framing", ErrPrecondition)
	}
	cusped, err := tri.IsOneCusped()
	if err != nil {
		return nil, err
	}
	if !cusped {
		return nil, fmt.Errorf("%w: triangulation is not one-cusped", ErrPrecondition)
	}
	cell := framing.Cellulation()
	if cell.Link().Triangulation() != tri {
		return nil, fmt.Errorf("%w: framing belongs to another triangulation", ErrPrecondition)
	}
	if !orient.CycleFree(tri, signs) {
		return nil, fmt.Errorf("%w: signs are not a cycle-free orientation", ErrPrecondition)
	}

	return &EdgeOrientation{
		kind:    Ideal,
		tri:     tri,
		signs:   append([]int(nil), signs...),
		framing: framing,
		cell:    cell,
	}, nil
}

// Kind returns the variant.
func (o *EdgeOrientation) Kind() Kind { return o.kind }

// Triangulation returns the underlying triangulation.
func (o *EdgeOrientation) Triangulation() *triangulation.Triangulation { return o.tri }

// Signs returns a copy of the sign vector.
func (o *EdgeOrientation) Signs() []int { return append([]int(nil), o.signs...) }

// SuperLongEdges returns the edge classes that are long at every corner.
func (o *EdgeOrientation) SuperLongEdges() []int { return SuperLongEdges(o.tri, o.signs) }

func (o *EdgeOrientation) require(k Kind) error {
	if o.kind != k {
		return fmt.Errorf("%w: operation needs a %s orientation, have %s", ErrPrecondition, k, o.kind)
	}

	return nil
}
