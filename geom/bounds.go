package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Bounds is the per-axis [Min, Max] interval of a point set.
type Bounds struct {
	Min Vec
	Max Vec
}

// BoundsOf returns the world-axis bounds of points.
// An empty input yields the zero Bounds.
func BoundsOf(points []Vec) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min = Vec{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)}
		b.Max = Vec{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)}
	}

	return b
}

// Extent returns Max − Min on each axis (the "peak to peak" size).
func (b Bounds) Extent() Vec { return r3.Sub(b.Max, b.Min) }

// Degenerate reports whether the interval is empty on at least one axis.
func (b Bounds) Degenerate() bool {
	return b.Min.X >= b.Max.X || b.Min.Y >= b.Max.Y || b.Min.Z >= b.Max.Z
}

// Overlaps reports whether a and b overlap on all three world axes.
//
// Strict mode (inclusive == false) requires min(a) < max(b) and max(a) > min(b)
// per axis, so touching faces do not count. Inclusive mode uses <= and >=.
// The test is symmetric in a and b.
func Overlaps(a, b Bounds, inclusive bool) bool {
	for i := 0; i < 3; i++ {
		aMin, aMax := Component(a.Min, i), Component(a.Max, i)
		bMin, bMax := Component(b.Min, i), Component(b.Max, i)
		if inclusive {
			if !(aMin <= bMax && aMax >= bMin) {
				return false
			}
			continue
		}
		if !(aMin < bMax && aMax > bMin) {
			return false
		}
	}

	return true
}

// MaxProjection returns the largest dot product of any point with axis.
// ok is false when points is empty.
func MaxProjection(points []Vec, axis Vec) (max float64, ok bool) {
	if len(points) == 0 {
		return 0, false
	}
	max = r3.Dot(points[0], axis)
	for _, p := range points[1:] {
		if d := r3.Dot(p, axis); d > max {
			max = d
		}
	}

	return max, true
}
