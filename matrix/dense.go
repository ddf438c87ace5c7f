// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Dense is a row-major matrix: element (i, j) lives at data[i*c+j].
type Dense struct {
	r, c int
	data []float64
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense returns a rows×cols zero matrix.
// Errors: ErrInvalidDimensions when rows or cols is not positive.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewIdentity returns the n×n identity.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// FromBools returns the 0/1 matrix of a square boolean adjacency, with
// shift subtracted on the diagonal (shift = 1 gives M − I).
//
// Errors: ErrInvalidDimensions for an empty input, ErrNonSquare when a row
// length differs from the row count, ErrNaNInf for a non-finite shift.
// Complexity: O(n²).
func FromBools(rows [][]bool, shift float64) (*Dense, error) {
	if math.IsNaN(shift) || math.IsInf(shift, 0) {
		return nil, matrixErrorf("FromBools", ErrNaNInf)
	}
	n := len(rows)
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf("FromBools", err)
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, matrixErrorf("FromBools", ErrNonSquare)
		}
		base := i * n
		for j, v := range row {
			if v {
				m.data[base+j] = 1
			}
		}
		m.data[base+i] -= shift
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns element (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", row, col, err)
	}

	return m.data[idx], nil
}

// Set assigns element (row, col). Non-finite values are rejected.
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return fmt.Errorf("Dense.Set(%d,%d): %w", row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("Dense.Set(%d,%d): %w", row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// String renders one bracketed row per line.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
