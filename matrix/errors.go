// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (possibly wrapped with context) and
// tests check them via errors.Is. No function panics on caller input.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is negative or ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNotUnimodular signals a 2x2 integer matrix whose determinant is not ±1.
	ErrNotUnimodular = errors.New("matrix: determinant is not ±1")

	// ErrOverflow signals an exact result that does not fit in int64.
	ErrOverflow = errors.New("matrix: int64 overflow")
)
