// SPDX-License-Identifier: MIT

package dsm_test

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvdesign/dsm"
)

// gonumSingularSum is Σσ(M) from the gonum SVD.
func gonumSingularSum(t *testing.T, m dsm.Matrix) float64 {
	t.Helper()
	var svd mat.SVD
	require.True(t, svd.Factorize(m.Dense(0), mat.SVDNone))
	var sum float64
	for _, v := range svd.Values(nil) {
		sum += v
	}

	return sum
}

// gonumEnergy is Σ|λ(M − I)| from the gonum eigen decomposition.
func gonumEnergy(t *testing.T, m dsm.Matrix) float64 {
	t.Helper()
	var eig mat.Eigen
	require.True(t, eig.Factorize(m.Dense(1), mat.EigenNone))
	var sum float64
	for _, v := range eig.Values(nil) {
		sum += cmplx.Abs(v)
	}

	return sum
}

func randomSymmetric(rng *rand.Rand, n int) dsm.Matrix {
	m := make(dsm.Matrix, n)
	for i := range m {
		m[i] = make([]bool, n)
		m[i][i] = true
	}
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			v := rng.Intn(3) == 0
			m[i][j], m[j][i] = v, v
		}
	}

	return m
}

func TestSymmetric(t *testing.T) {
	assert.True(t, dsm.Matrix{}.Symmetric())
	assert.True(t, full(3).Symmetric())
	assert.True(t, dsm.Build(vehicle().Parts).Symmetric())
	assert.False(t, dsm.Matrix{{true, true}, {false, true}}.Symmetric())
	assert.False(t, dsm.Matrix{{true, true}, {true}}.Symmetric())
}

func TestAdjacency(t *testing.T) {
	a, err := full(2).Adjacency(1)
	require.NoError(t, err)
	assert.Equal(t, 2, a.Rows())
	v, _ := a.At(0, 0)
	assert.Zero(t, v)
	v, _ = a.At(0, 1)
	assert.Equal(t, 1.0, v)

	_, err = dsm.Matrix{}.Adjacency(0)
	assert.Error(t, err)
}

func TestSpectral_MatchesGonumOnVehicle(t *testing.T) {
	m := dsm.Build(vehicle().Parts)
	n := float64(m.Len())

	assert.InDelta(t, gonumSingularSum(t, m)/n, dsm.C3(m), 1e-9)
	assert.InDelta(t, gonumEnergy(t, m), dsm.GraphEnergy(m), 1e-9)
}

func TestSpectral_MatchesGonumOnRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 30; trial++ {
		n := 2 + rng.Intn(10)
		m := randomSymmetric(rng, n)

		assert.InDelta(t, gonumSingularSum(t, m)/float64(n), dsm.C3(m), 1e-8, "trial %d", trial)
		assert.InDelta(t, gonumEnergy(t, m), dsm.GraphEnergy(m), 1e-8, "trial %d", trial)
	}
}

func TestSpectral_Asymmetric(t *testing.T) {
	m := dsm.Matrix{{true, true}, {false, true}}

	// σ = (√5 ± 1)/2, γ = 1/2
	assert.InDelta(t, math.Sqrt(5)/2, dsm.C3(m), 1e-12)
	// M − I is nilpotent
	assert.InDelta(t, 0.0, dsm.GraphEnergy(m), 1e-9)
}
