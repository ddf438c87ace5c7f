// SPDX-License-Identifier: MIT

package dsm_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdesign/design"
	"github.com/katalvlaran/lvdesign/dsm"
	"github.com/katalvlaran/lvdesign/internal/fixture"
)

func vehicle() *design.Design {
	return design.New("d", "n", "x", time.Time{}, fixture.Vehicle(), fixture.Catalog(), fixture.Palette())
}

func full(n int) dsm.Matrix {
	m := make(dsm.Matrix, n)
	for i := range m {
		m[i] = make([]bool, n)
		for j := range m[i] {
			m[i][j] = true
		}
	}

	return m
}

func TestBuild_VehicleIsSymmetricWithFullDiagonal(t *testing.T) {
	m := dsm.Build(vehicle().Parts)
	require.Equal(t, 12, m.Len())

	for i := range m {
		assert.True(t, m[i][i], "diagonal %d", i)
		for j := range m {
			assert.Equal(t, m[i][j], m[j][i], "symmetry %d,%d", i, j)
		}
		// everything rests on the chassis
		assert.True(t, m[0][i])
	}
}

func TestBuild_SkipsInvalidParts(t *testing.T) {
	raws := append(fixture.Vehicle(), fixture.At("9999", 0, 0, 0, 0))
	d := design.New("d", "n", "x", time.Time{}, raws, fixture.Catalog(), fixture.Palette())

	assert.Equal(t, 12, dsm.Build(d.Parts).Len())
	labels := dsm.Labels(d.Parts)
	require.Len(t, labels, 12)
	assert.Equal(t, "Plate 2 x 8", labels[0])
}

func TestComplexity_SinglePart(t *testing.T) {
	c := dsm.Compute(full(1))

	assert.Equal(t, dsm.Complexity{C1: 1, C2: 0, C3: 0, Total: 1}, c)
}

func TestComplexity_Empty(t *testing.T) {
	assert.Equal(t, dsm.Complexity{}, dsm.Compute(dsm.Matrix{}))
	assert.Zero(t, dsm.GraphEnergy(nil))
	assert.Nil(t, dsm.Matrix{}.Dense(0))
}

func TestComplexity_FullPair(t *testing.T) {
	m := full(2)
	c := dsm.Compute(m)

	assert.Equal(t, 2.0, c.C1)
	assert.Equal(t, 2.0, c.C2)
	assert.InDelta(t, 1.0, c.C3, 1e-12)
	assert.InDelta(t, 4.0, c.Total, 1e-12)
	assert.InDelta(t, 2.0, dsm.GraphEnergy(m), 1e-12)
}

func TestComplexity_Options(t *testing.T) {
	m := full(2)
	c := dsm.Compute(m, dsm.WithAlpha(2), dsm.WithBeta(0.5), dsm.WithGamma(1))

	assert.Equal(t, 4.0, c.C1)
	assert.Equal(t, 1.0, c.C2)
	assert.InDelta(t, 2.0, c.C3, 1e-12)
	assert.InDelta(t, c.C1+c.C2*c.C3, c.Total, 1e-12)

	assert.Panics(t, func() { dsm.WithGamma(nan()) })
}

func TestComplexity_IdentityMatrix(t *testing.T) {
	m := dsm.Matrix{{true, false, false}, {false, true, false}, {false, false, true}}
	c := dsm.Compute(m)

	assert.Equal(t, 3.0, c.C1)
	assert.Zero(t, c.C2)
	assert.InDelta(t, 1.0, c.C3, 1e-12) // three unit singular values, γ = 1/3
	assert.InDelta(t, 3.0, c.Total, 1e-12)
	assert.InDelta(t, 0.0, dsm.GraphEnergy(m), 1e-12)
}

func TestTotal_Identity(t *testing.T) {
	m := dsm.Build(vehicle().Parts)
	c := dsm.Compute(m)

	assert.Equal(t, 12.0, c.C1)
	assert.Equal(t, float64(m.OffDiagonal()), c.C2)
	assert.InDelta(t, c.C1+c.C2*c.C3, dsm.Total(m), 1e-9)
	assert.Greater(t, dsm.GraphEnergy(m), 0.0)
}

func TestAnalyze(t *testing.T) {
	r := dsm.Analyze(vehicle().Parts)

	assert.Equal(t, dsm.Version, r.Version)
	assert.Len(t, r.Labels, 12)
	require.Len(t, r.Order, 12)

	seen := make(map[int]bool)
	for _, i := range r.Order {
		seen[i] = true
	}
	assert.Len(t, seen, 12)

	re := r.Matrix.Reordered(r.Order)
	assert.Equal(t, r.Matrix.Sum(), re.Sum())
}

func TestOrder_Small(t *testing.T) {
	assert.Equal(t, []int{}, dsm.Order(dsm.Matrix{}))
	assert.Equal(t, []int{0}, dsm.Order(full(1)))
}
