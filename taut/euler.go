package taut

import (
	"fmt"

	"github.com/katalvlaran/foliar/matrix"
)

// EulerCocycle returns, per edge class e, (1 − cusps(e)/2)·sign(e), where
// cusps(e) counts the corners of e at which the branched surface has a cusp.
// Closed only.
//
// The cusp counts must be even and the resulting chain must be a cycle;
// otherwise ErrInvariant is returned.
func (o *EdgeOrientation) EulerCocycle() ([]int64, error) {
	if err := o.require(Closed); err != nil {
		return nil, err
	}
	counts := cuspCounts(o.tri, o.signs)
	c := make([]int64, len(counts))
	for e, n := range counts {
		if n%2 != 0 {
			return nil, fmt.Errorf("%w: edge class %d has %d cusps", ErrInvariant, e, n)
		}
		c[e] = int64(1-n/2) * int64(o.signs[e])
	}

	d1, err := o.tri.BoundaryMatrix1()
	if err != nil {
		return nil, err
	}
	bd, err := d1.MulVec(c)
	if err != nil {
		return nil, err
	}
	if !matrix.IsZeroVec(bd) {
		return nil, fmt.Errorf("%w: euler chain has nonzero boundary %v", ErrInvariant, bd)
	}

	return c, nil
}

// EulerClassVanishes reports whether the Euler class of a taut closed
// orientation is zero: the cocycle lies in the integer span of the columns
// of ∂2, detected by appending it as a column and comparing the invariant
// factors. Calling it on a non-taut orientation is an ErrPrecondition.
func (o *EdgeOrientation) EulerClassVanishes() (bool, error) {
	if err := o.require(Closed); err != nil {
		return false, err
	}
	taut, err := o.GivesFoliation()
	if err != nil {
		return false, err
	}
	if !taut {
		return false, fmt.Errorf("%w: orientation does not give a foliation", ErrPrecondition)
	}

	c, err := o.EulerCocycle()
	if err != nil {
		return false, err
	}
	d2, err := o.tri.BoundaryMatrix2()
	if err != nil {
		return false, err
	}
	ext, err := d2.AppendColumn(c)
	if err != nil {
		return false, err
	}
	before, err := matrix.InvariantFactors(d2)
	if err != nil {
		return false, err
	}
	after, err := matrix.InvariantFactors(ext)
	if err != nil {
		return false, err
	}

	return equalFactors(before, after), nil
}

func equalFactors(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
