// SPDX-License-Identifier: MIT

package dsm

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvdesign/matrix"
	"github.com/katalvlaran/lvdesign/part"
)

// Matrix is a square boolean adjacency matrix.
type Matrix [][]bool

// Build returns the DSM of the valid parts among parts, in their order.
// Invalid parts are skipped.
func Build(parts []part.Part) Matrix {
	valid := make([]part.Part, 0, len(parts))
	for _, p := range parts {
		if p.IsValid() {
			valid = append(valid, p)
		}
	}

	n := len(valid)
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]bool, n)
		for j := range m[i] {
			m[i][j] = part.Intersects(valid[j], valid[i], false)
		}
	}

	return m
}

// Labels returns the display names of the valid parts among parts.
func Labels(parts []part.Part) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p.IsValid() {
			out = append(out, p.Name())
		}
	}

	return out
}

// Len returns the order of the matrix.
func (m Matrix) Len() int { return len(m) }

// Sum counts the true entries.
func (m Matrix) Sum() int {
	var s int
	for _, row := range m {
		for _, v := range row {
			if v {
				s++
			}
		}
	}

	return s
}

// OffDiagonal counts the true entries outside the diagonal.
func (m Matrix) OffDiagonal() int {
	var s int
	for i, row := range m {
		for j, v := range row {
			if v && i != j {
				s++
			}
		}
	}

	return s
}

// Rows returns the matrix as 0/1 observation vectors.
func (m Matrix) Rows() [][]float64 {
	rows := make([][]float64, len(m))
	for i, row := range m {
		rows[i] = make([]float64, len(row))
		for j, v := range row {
			if v {
				rows[i][j] = 1
			}
		}
	}

	return rows
}

// Symmetric reports whether m is square and equal to its transpose.
// Built DSMs always are, since intersection is symmetric.
func (m Matrix) Symmetric() bool {
	for i, row := range m {
		if len(row) != len(m) {
			return false
		}
		for j := 0; j < i; j++ {
			if row[j] != m[j][i] {
				return false
			}
		}
	}

	return true
}

// Adjacency converts m to a dense 0/1 matrix minus shift on the diagonal.
// Errors come from matrix.FromBools (empty or ragged input).
func (m Matrix) Adjacency(shift float64) (*matrix.Dense, error) {
	return matrix.FromBools(m, shift)
}

// Dense converts m to a gonum matrix, minus shift on the diagonal.
// Returns nil for an empty matrix (gonum has no 0×0 Dense).
func (m Matrix) Dense(shift float64) *mat.Dense {
	n := len(m)
	if n == 0 {
		return nil
	}
	d := mat.NewDense(n, n, nil)
	for i, row := range m {
		for j, v := range row {
			if v {
				d.Set(i, j, 1)
			}
		}
		d.Set(i, i, d.At(i, i)-shift)
	}

	return d
}
