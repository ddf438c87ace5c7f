// SPDX-License-Identifier: MIT

package dsm

import (
	"github.com/katalvlaran/lvdesign/cluster"
	"github.com/katalvlaran/lvdesign/part"
)

// Version tags stored DSM results.
const Version = "2.0.0"

// Result is the DSM snapshot handed to storage and display.
type Result struct {
	Version string   `json:"version"`
	Matrix  Matrix   `json:"matrix"`
	Labels  []string `json:"labels"`
	Order   []int    `json:"order"`
}

// Order returns the display permutation of m's rows.
// Matrices smaller than 2×2 keep the identity order.
func Order(m Matrix) []int {
	order, err := cluster.Order(m.Rows())
	if err != nil {
		// ragged input is not a DSM; keep it in place
		order = make([]int, m.Len())
		for i := range order {
			order[i] = i
		}
	}

	return order
}

// Analyze builds the DSM of the valid parts and its display order.
func Analyze(parts []part.Part) Result {
	m := Build(parts)

	return Result{
		Version: Version,
		Matrix:  m,
		Labels:  Labels(parts),
		Order:   Order(m),
	}
}

// Reordered returns m with rows and columns permuted by order.
func (m Matrix) Reordered(order []int) Matrix {
	out := make(Matrix, len(order))
	for i, r := range order {
		out[i] = make([]bool, len(order))
		for j, c := range order {
			out[i][j] = m[r][c]
		}
	}

	return out
}
