package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec is a point or direction in the LDraw world frame (1 LDU = 0.4 mm).
type Vec = r3.Vec

// Rotation is a row-major 3×3 rotation matrix.
type Rotation [3][3]float64

// Identity is the rotation that leaves every vector unchanged.
var Identity = Rotation{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// Apply returns r·v.
func (r Rotation) Apply(v Vec) Vec {
	return Vec{
		X: r[0][0]*v.X + r[0][1]*v.Y + r[0][2]*v.Z,
		Y: r[1][0]*v.X + r[1][1]*v.Y + r[1][2]*v.Z,
		Z: r[2][0]*v.X + r[2][1]*v.Y + r[2][2]*v.Z,
	}
}

// Round rounds every coordinate of v to the nearest integer, ties to even.
func Round(v Vec) Vec {
	return Vec{X: math.RoundToEven(v.X), Y: math.RoundToEven(v.Y), Z: math.RoundToEven(v.Z)}
}

// Component returns coordinate i (0 = X, 1 = Y, 2 = Z) of v.
// Any other index yields 0.
func Component(v Vec, i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}

	return 0
}

// Negate returns −v.
func Negate(v Vec) Vec { return r3.Scale(-1, v) }
