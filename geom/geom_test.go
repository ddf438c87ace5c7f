package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdesign/geom"
)

// rotY90 turns +X into −Z (a quarter turn about the Y axis).
var rotY90 = geom.Rotation{
	{0, 0, 1},
	{0, 1, 0},
	{-1, 0, 0},
}

// TestBox_CornerOrder pins the documented corner order.
func TestBox_CornerOrder(t *testing.T) {
	c := geom.Box(geom.Vec{X: 1, Y: 2, Z: 3}, geom.Vec{X: 2, Y: 4, Z: 6})
	want := [8]geom.Vec{
		{X: 1, Y: 2, Z: 3},
		{X: -1, Y: 2, Z: 3},
		{X: -1, Y: -2, Z: 3},
		{X: -1, Y: -2, Z: -3},
		{X: -1, Y: 2, Z: -3},
		{X: 1, Y: 2, Z: -3},
		{X: 1, Y: -2, Z: -3},
		{X: 1, Y: -2, Z: 3},
	}
	assert.Equal(t, want, c)
}

// TestTransform_RotatesTranslatesAndRounds checks r·c + p followed by rounding.
func TestTransform_RotatesTranslatesAndRounds(t *testing.T) {
	corners := geom.Box(geom.Vec{X: 10, Y: 0, Z: 0}, geom.Vec{X: 10, Y: 0, Z: 0})
	out := geom.Transform(corners, rotY90, geom.Vec{X: 0.4, Y: 2.5, Z: -0.6})

	// corner 0 = (10,0,0) → (0,0,-10) + p = (0.4, 2.5, -10.6) → (0, 2, -11)
	assert.Equal(t, geom.Vec{X: 0, Y: 2, Z: -11}, out[0])
	// corner 1 = (0,0,0) → p = (0.4, 2.5, -0.6) → (0, 2, -1)
	assert.Equal(t, geom.Vec{X: 0, Y: 2, Z: -1}, out[1])
}

func TestRotation_Apply(t *testing.T) {
	v := rotY90.Apply(geom.Vec{X: 0, Y: 0, Z: -1})
	assert.Equal(t, geom.Vec{X: -1, Y: 0, Z: 0}, v)
	assert.Equal(t, geom.Vec{X: 3, Y: -2, Z: 1}, geom.Identity.Apply(geom.Vec{X: 3, Y: -2, Z: 1}))
}

// TestOverlaps_StrictVsInclusive: touching boxes only overlap inclusively.
func TestOverlaps_StrictVsInclusive(t *testing.T) {
	a := geom.Bounds{Min: geom.Vec{}, Max: geom.Vec{X: 1, Y: 1, Z: 1}}
	b := geom.Bounds{Min: geom.Vec{X: 1}, Max: geom.Vec{X: 2, Y: 1, Z: 1}}

	assert.False(t, geom.Overlaps(a, b, false))
	assert.True(t, geom.Overlaps(a, b, true))
	assert.Equal(t, geom.Overlaps(a, b, true), geom.Overlaps(b, a, true))

	c := geom.Bounds{Min: geom.Vec{X: 0.5, Y: 0.5, Z: 0.5}, Max: geom.Vec{X: 3, Y: 3, Z: 3}}
	assert.True(t, geom.Overlaps(a, c, false))
	assert.True(t, geom.Overlaps(c, a, false))
	assert.True(t, geom.Overlaps(a, a, false), "non-degenerate bounds overlap themselves")
}

func TestBoundsOf(t *testing.T) {
	assert.Equal(t, geom.Bounds{}, geom.BoundsOf(nil))

	b := geom.BoundsOf([]geom.Vec{{X: 1, Y: -2, Z: 3}, {X: -1, Y: 5, Z: 0}})
	assert.Equal(t, geom.Vec{X: -1, Y: -2, Z: 0}, b.Min)
	assert.Equal(t, geom.Vec{X: 1, Y: 5, Z: 3}, b.Max)
	assert.Equal(t, geom.Vec{X: 2, Y: 7, Z: 3}, b.Extent())
	assert.False(t, b.Degenerate())

	flat := geom.BoundsOf([]geom.Vec{{X: 0}, {X: 1, Y: 1}})
	assert.True(t, flat.Degenerate())
}

func TestMaxProjection(t *testing.T) {
	_, ok := geom.MaxProjection(nil, geom.Vec{X: 1})
	assert.False(t, ok)

	m, ok := geom.MaxProjection([]geom.Vec{{X: 1}, {X: -4}, {X: 3}}, geom.Vec{X: -1})
	require.True(t, ok)
	assert.Equal(t, 4.0, m)
}

func cube(side float64) []geom.Vec {
	var pts []geom.Vec
	c := geom.Box(geom.Vec{X: side, Y: side, Z: side}, geom.Vec{X: side, Y: side, Z: side})
	pts = append(pts, c[:]...)

	return pts
}

func TestHullVolume(t *testing.T) {
	tests := []struct {
		name   string
		points []geom.Vec
		want   float64
	}{
		{"empty", nil, 0},
		{"three points", []geom.Vec{{}, {X: 1}, {Y: 1}}, 0},
		{"coplanar square", []geom.Vec{{}, {X: 1}, {Y: 1}, {X: 1, Y: 1}}, 0},
		{"collinear", []geom.Vec{{}, {X: 1}, {X: 2}, {X: 3}}, 0},
		{"tetrahedron", []geom.Vec{{}, {X: 1}, {Y: 1}, {Z: 1}}, 1.0 / 6},
		{"unit cube", cube(1), 1},
		{"cube with interior and duplicates", append(cube(2), geom.Vec{X: 1, Y: 1, Z: 1}, geom.Vec{X: 2, Y: 2, Z: 2}), 8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, geom.HullVolume(tc.points), 1e-9)
		})
	}
}

// TestHullVolume_TwoBoxes: the hull of two separated unit cubes on the X axis
// is the 3×1×1 slab spanning both.
func TestHullVolume_TwoBoxes(t *testing.T) {
	a := cube(1)
	b := geom.Transform(geom.Box(geom.Vec{X: 1, Y: 1, Z: 1}, geom.Vec{X: 1, Y: 1, Z: 1}), geom.Identity, geom.Vec{X: 2})
	pts := append(a, b[:]...)
	assert.InDelta(t, 3.0, geom.HullVolume(pts), 1e-9)
}

func TestRound_TiesToEven(t *testing.T) {
	got := geom.Round(geom.Vec{X: 0.5, Y: 1.5, Z: -2.5})
	assert.Equal(t, geom.Vec{X: 0, Y: 2, Z: -2}, got)
	assert.False(t, math.Signbit(geom.Round(geom.Vec{X: 0.4}).X))
}
