// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/big"
)

// InvariantFactors returns the nonzero diagonal of the Smith normal form of m,
// in divisibility order (each factor divides the next). The number of factors
// is the rank of m over Q.
//
// The reduction runs on math/big integers, so intermediate growth cannot
// overflow. Factors that do not fit in int64 yield ErrOverflow.
//
// Complexity: polynomial in the matrix size; boundary matrices of the
// triangulations foliar works with are at most a few hundred columns.
func InvariantFactors(m *Dense) ([]int64, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	facs := smithDiagonal(toBig(m))
	out := make([]int64, len(facs))
	for i, f := range facs {
		if !f.IsInt64() {
			return nil, fmt.Errorf("%w: invariant factor %s", ErrOverflow, f.String())
		}
		out[i] = f.Int64()
	}

	return out, nil
}

// Rank returns the rank of m over Q.
func Rank(m *Dense) (int, error) {
	facs, err := InvariantFactors(m)
	if err != nil {
		return 0, err
	}

	return len(facs), nil
}

func toBig(m *Dense) [][]*big.Int {
	a := make([][]*big.Int, m.r)
	for i := 0; i < m.r; i++ {
		a[i] = make([]*big.Int, m.c)
		for j := 0; j < m.c; j++ {
			a[i][j] = big.NewInt(m.data[i*m.c+j])
		}
	}

	return a
}

// smithDiagonal diagonalizes a in place by unimodular row and column
// operations and returns |d_1|, |d_2|, ... with d_i | d_{i+1}.
func smithDiagonal(a [][]*big.Int) []*big.Int {
	rows := len(a)
	if rows == 0 {
		return nil
	}
	cols := len(a[0])
	var facs []*big.Int
	q := new(big.Int)
	t := new(big.Int)

	swapRows := func(i, j int) { a[i], a[j] = a[j], a[i] }
	swapCols := func(i, j int) {
		for _, row := range a {
			row[i], row[j] = row[j], row[i]
		}
	}

	for r := 0; r < rows && r < cols; r++ {
		pi, pj := -1, -1
		for i := r; i < rows; i++ {
			for j := r; j < cols; j++ {
				if a[i][j].Sign() != 0 && (pi < 0 || a[i][j].CmpAbs(a[pi][pj]) < 0) {
					pi, pj = i, j
				}
			}
		}
		if pi < 0 {
			break
		}
		swapRows(r, pi)
		swapCols(r, pj)

		for {
			p := a[r][r]
			clean := true
			for i := r + 1; i < rows; i++ {
				if a[i][r].Sign() == 0 {
					continue
				}
				q.Quo(a[i][r], p)
				if q.Sign() != 0 {
					for j := r; j < cols; j++ {
						a[i][j].Sub(a[i][j], t.Mul(q, a[r][j]))
					}
				}
				if a[i][r].Sign() != 0 {
					clean = false
				}
			}
			for j := r + 1; j < cols; j++ {
				if a[r][j].Sign() == 0 {
					continue
				}
				q.Quo(a[r][j], p)
				if q.Sign() != 0 {
					for i := r; i < rows; i++ {
						a[i][j].Sub(a[i][j], t.Mul(q, a[i][r]))
					}
				}
				if a[r][j].Sign() != 0 {
					clean = false
				}
			}
			if !clean {
				// a smaller remainder survived: move it into the pivot slot
				bi, bj := r, r
				var best *big.Int
				for i := r + 1; i < rows; i++ {
					if a[i][r].Sign() != 0 && (best == nil || a[i][r].CmpAbs(best) < 0) {
						best, bi, bj = a[i][r], i, r
					}
				}
				for j := r + 1; j < cols; j++ {
					if a[r][j].Sign() != 0 && (best == nil || a[r][j].CmpAbs(best) < 0) {
						best, bi, bj = a[r][j], r, j
					}
				}
				if bi != r {
					swapRows(r, bi)
				} else {
					swapCols(r, bj)
				}
				continue
			}

			// divisibility: fold an offending row into the pivot row
			folded := false
			for i := r + 1; i < rows && !folded; i++ {
				for j := r + 1; j < cols; j++ {
					if t.Rem(a[i][j], p).Sign() != 0 {
						for jj := r; jj < cols; jj++ {
							a[r][jj].Add(a[r][jj], a[i][jj])
						}
						folded = true
						break
					}
				}
			}
			if !folded {
				break
			}
		}
		facs = append(facs, new(big.Int).Abs(a[r][r]))
	}

	return facs
}
