// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/big"
)

// Residuals reduces every vector in vecs modulo the Q-span of span and
// returns the exact rational remainders. A zero residual means the vector
// lies in the span.
//
// Reduction is Gaussian elimination in insertion order: each span vector is
// reduced against the pivots found so far and, if nonzero, contributes its
// first nonzero coordinate as a new pivot.
func Residuals(span [][]int64, vecs [][]int64) ([][]*big.Rat, error) {
	n := -1
	for _, v := range append(append([][]int64{}, span...), vecs...) {
		if n >= 0 && len(v) != n {
			return nil, fmt.Errorf("%w: vectors of length %d and %d", ErrDimensionMismatch, n, len(v))
		}
		n = len(v)
	}

	type pivotRow struct {
		col int
		vec []*big.Rat
	}
	var basis []pivotRow
	reduce := func(v []*big.Rat) {
		f := new(big.Rat)
		t := new(big.Rat)
		for _, b := range basis {
			if v[b.col].Sign() == 0 {
				continue
			}
			f.Quo(v[b.col], b.vec[b.col])
			for i := range v {
				v[i].Sub(v[i], t.Mul(f, b.vec[i]))
			}
		}
	}

	for _, s := range span {
		v := ratVec(s)
		reduce(v)
		for i, x := range v {
			if x.Sign() != 0 {
				basis = append(basis, pivotRow{col: i, vec: v})
				break
			}
		}
	}
	out := make([][]*big.Rat, len(vecs))
	for k, s := range vecs {
		v := ratVec(s)
		reduce(v)
		out[k] = v
	}

	return out, nil
}

// IsZeroRat reports whether every entry of v is zero.
func IsZeroRat(v []*big.Rat) bool {
	for _, x := range v {
		if x.Sign() != 0 {
			return false
		}
	}

	return true
}

// ParallelRatio returns λ with b = λ·a for nonzero a, or ok=false when b is
// not a rational multiple of a.
func ParallelRatio(a, b []*big.Rat) (*big.Rat, bool) {
	idx := -1
	for i, x := range a {
		if x.Sign() != 0 {
			idx = i
			break
		}
	}
	if idx < 0 || len(a) != len(b) {
		return nil, false
	}
	lam := new(big.Rat).Quo(b[idx], a[idx])
	t := new(big.Rat)
	for i := range a {
		if t.Mul(lam, a[i]).Cmp(b[i]) != 0 {
			return nil, false
		}
	}

	return lam, true
}

func ratVec(v []int64) []*big.Rat {
	out := make([]*big.Rat, len(v))
	for i, x := range v {
		out[i] = new(big.Rat).SetInt64(x)
	}

	return out
}
