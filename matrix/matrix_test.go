// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the integer matrix package.
package matrix_test

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/foliar/matrix"
)

func mustRows(t *testing.T, rows [][]int64, cols int) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows, cols)
	require.NoError(t, err)

	return m
}

func TestDense_Shape(t *testing.T) {
	_, err := matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.NewDense(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 3, m.Cols())

	_, err = matrix.FromRows([][]int64{{1, 2}, {3}}, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDense_AtSetInc(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 5))
	require.NoError(t, m.Inc(0, 1, -2))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Inc(0, -1, 1), matrix.ErrOutOfRange)
}

func TestMulTransposeAppend(t *testing.T) {
	a := mustRows(t, [][]int64{{1, 2}, {3, 4}, {5, 6}}, 0)
	b := mustRows(t, [][]int64{{1, 0, -1}, {0, 1, 1}}, 0)

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	want := [][]int64{{1, 2, 1}, {3, 4, 1}, {5, 6, 1}}
	if diff := cmp.Diff(want, p.RowsCopy()); diff != "" {
		t.Errorf("Mul mismatch (-want +got):\n%s", diff)
	}

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	assert.True(t, a.T().T().Equal(a))
	assert.Equal(t, []int64{1, 3, 5}, a.Column(0))

	ext, err := a.AppendColumn([]int64{7, 8, 9})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 4, 8}, ext.Row(1))

	v, err := a.MulVec([]int64{1, -1})
	require.NoError(t, err)
	assert.Equal(t, []int64{-1, -1, -1}, v)
}

func TestInvariantFactors(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int64
		want []int64
	}{
		{"zero", [][]int64{{0, 0}, {0, 0}}, []int64{}},
		{"diag", [][]int64{{2, 0}, {0, 3}}, []int64{1, 6}},
		{"z5", [][]int64{{5}}, []int64{5}},
		{"classic", [][]int64{{2, 4, 4}, {-6, 6, 12}, {10, -4, -16}}, []int64{2, 6, 12}},
		{"torus boundary", [][]int64{{1, -1, 0}, {-1, 1, 0}}, []int64{1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.InvariantFactors(mustRows(t, tc.rows, 0))
			require.NoError(t, err)
			if len(tc.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}

	r, err := matrix.Rank(mustRows(t, [][]int64{{1, 2}, {2, 4}}, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, r)

	empty, err := matrix.NewDense(0, 4)
	require.NoError(t, err)
	r, err = matrix.Rank(empty)
	require.NoError(t, err)
	assert.Equal(t, 0, r)
}

func TestResiduals(t *testing.T) {
	span := [][]int64{{1, 1, 0}, {0, 2, 2}}
	res, err := matrix.Residuals(span, [][]int64{{1, 3, 2}, {0, 0, 1}, {2, 0, -2}})
	require.NoError(t, err)
	assert.True(t, matrix.IsZeroRat(res[0]))
	assert.False(t, matrix.IsZeroRat(res[1]))
	assert.True(t, matrix.IsZeroRat(res[2]))

	lam, ok := matrix.ParallelRatio(
		[]*big.Rat{big.NewRat(2, 1), big.NewRat(0, 1)},
		[]*big.Rat{big.NewRat(-3, 1), big.NewRat(0, 1)},
	)
	require.True(t, ok)
	assert.Equal(t, 0, lam.Cmp(big.NewRat(-3, 2)))

	_, ok = matrix.ParallelRatio(
		[]*big.Rat{big.NewRat(1, 1), big.NewRat(0, 1)},
		[]*big.Rat{big.NewRat(1, 1), big.NewRat(1, 1)},
	)
	assert.False(t, ok)

	_, err = matrix.Residuals([][]int64{{1}}, [][]int64{{1, 2}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMat2AndGCD(t *testing.T) {
	m := matrix.Mat2{{2, 1}, {1, 1}}
	inv, err := m.Inverse()
	require.NoError(t, err)
	assert.Equal(t, matrix.Mat2{{1, -1}, {-1, 2}}, inv)

	m = matrix.Mat2{{0, 1}, {1, 0}}
	inv, err = m.Inverse()
	require.NoError(t, err)
	assert.Equal(t, m, inv)

	_, err = matrix.Mat2{{2, 0}, {0, 1}}.Inverse()
	require.ErrorIs(t, err, matrix.ErrNotUnimodular)

	assert.Equal(t, int64(6), matrix.GCD(-12, 18))
	assert.Equal(t, int64(0), matrix.GCD(0, 0))

	for _, p := range [][2]int64{{3, 5}, {-4, 7}, {1, 0}, {0, -1}, {12, -5}} {
		g, x, y := matrix.ExtGCD(p[0], p[1])
		assert.Equal(t, matrix.GCD(p[0], p[1]), g)
		assert.Equal(t, g, p[0]*x+p[1]*y)
	}
}
