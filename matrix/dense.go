// SPDX-License-Identifier: MIT
// Package matrix provides exact integer linear algebra for chain complexes.
// Dense is a row-major int64 matrix stored in a flat slice. Boundary maps of
// triangulations and cellulations are built as Dense values, and their
// invariants (rank, invariant factors) are computed exactly.
package matrix

import "fmt"

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of int64 values. Zero-sized shapes are valid:
// a 0×n matrix is the boundary map out of an empty chain group.
type Dense struct {
	r, c int
	data []int64
}

// NewDense creates an r×c zero matrix.
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// FromRows builds a matrix from a rectangular slice of rows, copying the data.
// cols gives the width when rows is empty.
func FromRows(rows [][]int64, cols int) (*Dense, error) {
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrBadShape, i, len(row), cols)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
func (m *Dense) At(row, col int) (int64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v int64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Inc adds delta to the element at (row, col). Boundary maps are assembled by
// accumulating signed incidences, so this is the main builder primitive.
func (m *Dense) Inc(row, col int, delta int64) error {
	idx, err := m.indexOf("Inc", row, col)
	if err != nil {
		return err
	}
	m.data[idx] += delta

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) []int64 {
	out := make([]int64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// Column returns a copy of column j.
func (m *Dense) Column(j int) []int64 {
	out := make([]int64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out
}

// RowsCopy returns the matrix as a fresh [][]int64.
func (m *Dense) RowsCopy() [][]int64 {
	out := make([][]int64, m.r)
	for i := range out {
		out[i] = m.Row(i)
	}

	return out
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	d := make([]int64, len(m.data))
	copy(d, m.data)

	return &Dense{r: m.r, c: m.c, data: d}
}

// T returns the transpose.
func (m *Dense) T() *Dense {
	out := &Dense{r: m.c, c: m.r, data: make([]int64, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// IsZero reports whether every entry is zero.
func (m *Dense) IsZero() bool {
	for _, v := range m.data {
		if v != 0 {
			return false
		}
	}

	return true
}

// Equal reports whether m and o have the same shape and entries.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// AppendColumn returns a new matrix [m | col].
func (m *Dense) AppendColumn(col []int64) (*Dense, error) {
	if len(col) != m.r {
		return nil, fmt.Errorf("%w: column length %d, rows %d", ErrDimensionMismatch, len(col), m.r)
	}
	out := &Dense{r: m.r, c: m.c + 1, data: make([]int64, m.r*(m.c+1))}
	for i := 0; i < m.r; i++ {
		copy(out.data[i*out.c:i*out.c+m.c], m.data[i*m.c:(i+1)*m.c])
		out.data[i*out.c+m.c] = col[i]
	}

	return out, nil
}

// String renders the matrix one row per line.
func (m *Dense) String() string {
	s := ""
	for i := 0; i < m.r; i++ {
		s += fmt.Sprintln(m.data[i*m.c : (i+1)*m.c])
	}

	return s
}
