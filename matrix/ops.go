// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Mul returns a·b.
// Complexity: O(a.r * a.c * b.c).
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.c != b.r {
		return nil, fmt.Errorf("%w: %dx%d · %dx%d", ErrDimensionMismatch, a.r, a.c, b.r, b.c)
	}
	out := &Dense{r: a.r, c: b.c, data: make([]int64, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			x := a.data[i*a.c+k]
			if x == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				out.data[i*b.c+j] += x * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}

// MulVec returns m·v.
func (m *Dense) MulVec(v []int64) ([]int64, error) {
	if len(v) != m.c {
		return nil, fmt.Errorf("%w: vector length %d, cols %d", ErrDimensionMismatch, len(v), m.c)
	}
	out := make([]int64, m.r)
	for i := 0; i < m.r; i++ {
		var s int64
		row := m.data[i*m.c : (i+1)*m.c]
		for j, x := range row {
			s += x * v[j]
		}
		out[i] = s
	}

	return out, nil
}

// Dot returns the integer dot product of two equal-length vectors.
func Dot(a, b []int64) (int64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}
	var s int64
	for i, x := range a {
		s += x * b[i]
	}

	return s, nil
}

// IsZeroVec reports whether every entry of v is zero.
func IsZeroVec(v []int64) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}

	return true
}

// Combine returns p·a + q·b for equal-length vectors.
func Combine(p int64, a []int64, q int64, b []int64) []int64 {
	out := make([]int64, len(a))
	for i := range a {
		out[i] = p*a[i] + q*b[i]
	}

	return out
}
