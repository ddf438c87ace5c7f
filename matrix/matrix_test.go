// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdesign/matrix"
)

func TestNewDense(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	for _, shape := range [][2]int{{0, 1}, {1, 0}, {-1, 2}} {
		_, err = matrix.NewDense(shape[0], shape[1])
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "%v", shape)
	}
}

func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 4.5))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	c := m.Clone()
	require.NoError(t, c.Set(1, 0, 0))
	v, _ = m.At(1, 0)
	assert.Equal(t, 4.5, v, "clone must not share storage")
	assert.Equal(t, "[0, 0]\n[4.5, 0]\n", m.String())
}

func TestNewIdentity(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	assert.Equal(t, "[1, 0, 0]\n[0, 1, 0]\n[0, 0, 1]\n", id.String())

	_, err = matrix.NewIdentity(0)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestFromBools(t *testing.T) {
	rows := [][]bool{{true, true}, {false, true}}

	m, err := matrix.FromBools(rows, 0)
	require.NoError(t, err)
	assert.Equal(t, "[1, 1]\n[0, 1]\n", m.String())

	m, err = matrix.FromBools(rows, 1)
	require.NoError(t, err)
	assert.Equal(t, "[0, 1]\n[0, 0]\n", m.String())

	_, err = matrix.FromBools(nil, 0)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.FromBools([][]bool{{true}, {true}}, 0)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.FromBools(rows, math.Inf(1))
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestValidateSymmetric(t *testing.T) {
	sym, _ := matrix.FromBools([][]bool{{true, true}, {true, false}}, 0)
	asym, _ := matrix.FromBools([][]bool{{true, true}, {false, true}}, 0)
	rect, _ := matrix.NewDense(2, 3)

	assert.NoError(t, matrix.ValidateSymmetric(sym, 0))
	assert.ErrorIs(t, matrix.ValidateSymmetric(asym, 0.5), matrix.ErrAsymmetry)
	assert.NoError(t, matrix.ValidateSymmetric(asym, -1), "negative tolerance is taken by magnitude")
	assert.ErrorIs(t, matrix.ValidateSymmetric(rect, 0), matrix.ErrNonSquare)
	assert.ErrorIs(t, matrix.ValidateSymmetric(nil, 0), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateSymmetric(sym, math.NaN()), matrix.ErrNaNInf)
}

func TestEigenSym_Known(t *testing.T) {
	tests := []struct {
		name string
		rows [][]bool
		want []float64
	}{
		{"single", [][]bool{{true}}, []float64{1}},
		{"pair", [][]bool{{true, true}, {true, true}}, []float64{0, 2}},
		{"path", [][]bool{{false, true, false}, {true, false, true}, {false, true, false}}, []float64{-math.Sqrt2, 0, math.Sqrt2}},
		{"triangle", [][]bool{{false, true, true}, {true, false, true}, {true, true, false}}, []float64{-1, -1, 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.FromBools(tc.rows, 0)
			require.NoError(t, err)

			got, err := matrix.EigenSym(m, matrix.DefaultEigenTolerance, matrix.DefaultMaxSweeps)
			require.NoError(t, err)
			require.Len(t, got, len(tc.want))
			for i := range got {
				assert.InDelta(t, tc.want[i], got[i], 1e-9)
			}
		})
	}
}

// TestEigenSym_Invariants checks trace and Frobenius norm on random
// symmetric adjacency matrices: Σλ = tr(A) and Σλ² = ‖A‖².
func TestEigenSym_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.Intn(30)
		rows := make([][]bool, n)
		for i := range rows {
			rows[i] = make([]bool, n)
		}
		var trace, frob float64
		for i := 0; i < n; i++ {
			if rng.Intn(2) == 1 {
				rows[i][i] = true
				trace++
				frob++
			}
			for j := i + 1; j < n; j++ {
				if rng.Float64() < 0.3 {
					rows[i][j], rows[j][i] = true, true
					frob += 2
				}
			}
		}
		m, err := matrix.FromBools(rows, 0)
		require.NoError(t, err)

		vals, err := matrix.EigenSym(m, matrix.DefaultEigenTolerance, matrix.DefaultMaxSweeps)
		require.NoError(t, err, "trial %d", trial)

		var sum, sq float64
		for i, v := range vals {
			if i > 0 {
				assert.LessOrEqual(t, vals[i-1], v, "ascending order")
			}
			sum += v
			sq += v * v
		}
		assert.InDelta(t, trace, sum, 1e-8, "trial %d", trial)
		assert.InDelta(t, frob, sq, 1e-7, "trial %d", trial)
	}
}

func TestEigenSym_Errors(t *testing.T) {
	asym, _ := matrix.FromBools([][]bool{{true, true}, {false, true}}, 0)
	_, err := matrix.EigenSym(asym, matrix.DefaultEigenTolerance, matrix.DefaultMaxSweeps)
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)

	pair, _ := matrix.FromBools([][]bool{{true, true}, {true, true}}, 0)
	_, err = matrix.EigenSym(pair, matrix.DefaultEigenTolerance, 0)
	assert.ErrorIs(t, err, matrix.ErrEigenFailed)

	// an already diagonal matrix needs no sweep
	id, _ := matrix.NewIdentity(3)
	vals, err := matrix.EigenSym(id, matrix.DefaultEigenTolerance, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1}, vals)

	// the input is left untouched
	assert.Equal(t, "[1, 1]\n[1, 1]\n", pair.String())
}
