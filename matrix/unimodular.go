// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Mat2 is a 2x2 integer matrix [[A00, A01], [A10, A11]].
type Mat2 [2][2]int64

// Det returns the determinant.
func (m Mat2) Det() int64 { return m[0][0]*m[1][1] - m[0][1]*m[1][0] }

// Inverse returns the exact integer inverse of a unimodular matrix.
// Returns ErrNotUnimodular when det ∉ {1, -1}.
func (m Mat2) Inverse() (Mat2, error) {
	det := m.Det()
	if det != 1 && det != -1 {
		return Mat2{}, fmt.Errorf("%w: det %d of %v", ErrNotUnimodular, det, m)
	}

	// det is its own inverse
	return Mat2{
		{m[1][1] * det, -m[0][1] * det},
		{-m[1][0] * det, m[0][0] * det},
	}, nil
}

// GCD returns the non-negative greatest common divisor; GCD(0,0) = 0.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// ExtGCD returns g, x, y with a·x + b·y = g and g >= 0. The coefficients are
// those of the recursive Euclidean algorithm with floored division.
func ExtGCD(a, b int64) (g, x, y int64) {
	g, x, y = extGCD(a, b)
	if g < 0 {
		g, x, y = -g, -x, -y
	}

	return g, x, y
}

func extGCD(a, b int64) (g, x, y int64) {
	if b == 0 {
		return a, 1, 0
	}
	q, r := floorDivMod(a, b)
	g, x1, y1 := extGCD(b, r)

	return g, y1, x1 - q*y1
}

// floorDivMod returns q = ⌊a/b⌋ and r = a − q·b, which has the sign of b.
func floorDivMod(a, b int64) (q, r int64) {
	q, r = a/b, a%b
	if r != 0 && (r < 0) != (b < 0) {
		q--
		r += b
	}

	return q, r
}

// FloorDiv returns ⌊a/b⌋ for b != 0.
func FloorDiv(a, b int64) int64 {
	q, _ := floorDivMod(a, b)
	return q
}
