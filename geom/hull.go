package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// hullEps is the visibility tolerance used by the incremental hull.
// Vertices live on an integer grid, so any real separation is far larger.
const hullEps = 1e-9

// face is an outward-oriented triangle of the running hull (indices into pts).
type face struct {
	a, b, c int
	normal  Vec
}

func newFace(pts []Vec, a, b, c int) face {
	n := r3.Cross(r3.Sub(pts[b], pts[a]), r3.Sub(pts[c], pts[a]))

	return face{a: a, b: b, c: c, normal: n}
}

// visible reports whether p lies strictly on the outer side of f.
func (f face) visible(pts []Vec, p Vec) bool {
	return r3.Dot(f.normal, r3.Sub(p, pts[f.a])) > hullEps
}

// HullVolume returns the volume enclosed by the convex hull of points.
//
// Degenerate inputs (fewer than four distinct points, or all points collinear
// or coplanar) have no interior and yield 0; the function never fails.
//
// Steps:
//  1. Deduplicate points.
//  2. Seed a tetrahedron from extreme points; give up with 0 if none exists.
//  3. Insert every remaining point: drop the faces it can see and stitch the
//     horizon to it (incremental hull).
//  4. Sum signed tetrahedron volumes of the outward faces against the origin.
//
// Complexity: O(P·F) time, O(P + F) memory.
func HullVolume(points []Vec) float64 {
	pts := dedupe(points)
	if len(pts) < 4 {
		return 0
	}

	// 2. Seed: p0, farthest p1, p2 maximizing triangle area, p3 maximizing volume.
	i0 := 0
	i1 := farthestFrom(pts, pts[i0])
	if r3.Norm2(r3.Sub(pts[i1], pts[i0])) <= hullEps {
		return 0
	}
	i2, best := -1, hullEps
	for i := range pts {
		area := r3.Norm2(r3.Cross(r3.Sub(pts[i1], pts[i0]), r3.Sub(pts[i], pts[i0])))
		if area > best {
			i2, best = i, area
		}
	}
	if i2 < 0 {
		return 0 // collinear
	}
	base := newFace(pts, i0, i1, i2)
	i3, best := -1, hullEps
	for i := range pts {
		vol := math.Abs(r3.Dot(base.normal, r3.Sub(pts[i], pts[i0])))
		if vol > best {
			i3, best = i, vol
		}
	}
	if i3 < 0 {
		return 0 // coplanar
	}

	seed := [4]int{i0, i1, i2, i3}
	faces := make([]face, 0, 16)
	for _, tri := range [4][4]int{{0, 1, 2, 3}, {0, 3, 1, 2}, {1, 3, 2, 0}, {0, 2, 3, 1}} {
		a, b, c, opposite := seed[tri[0]], seed[tri[1]], seed[tri[2]], seed[tri[3]]
		f := newFace(pts, a, b, c)
		if f.visible(pts, pts[opposite]) {
			f = newFace(pts, a, c, b) // flip so the interior is behind the face
		}
		faces = append(faces, f)
	}

	// 3. Incremental insertion.
	inSeed := map[int]bool{i0: true, i1: true, i2: true, i3: true}
	for i, p := range pts {
		if inSeed[i] {
			continue
		}
		edges := make(map[[2]int]bool)
		kept := faces[:0:0]
		for _, f := range faces {
			if f.visible(pts, p) {
				edges[[2]int{f.a, f.b}] = true
				edges[[2]int{f.b, f.c}] = true
				edges[[2]int{f.c, f.a}] = true
				continue
			}
			kept = append(kept, f)
		}
		if len(edges) == 0 {
			continue // inside the current hull
		}
		// A visible edge whose reverse is not visible lies on the horizon.
		for e := range edges {
			if edges[[2]int{e[1], e[0]}] {
				continue
			}
			kept = append(kept, newFace(pts, e[0], e[1], i))
		}
		faces = kept
	}

	// 4. Divergence theorem over outward triangles.
	var vol float64
	for _, f := range faces {
		vol += r3.Dot(pts[f.a], r3.Cross(pts[f.b], pts[f.c]))
	}

	return math.Abs(vol) / 6
}

func dedupe(points []Vec) []Vec {
	seen := make(map[Vec]struct{}, len(points))
	out := make([]Vec, 0, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out
}

func farthestFrom(pts []Vec, origin Vec) int {
	idx, best := 0, -1.0
	for i, p := range pts {
		if d := r3.Norm2(r3.Sub(p, origin)); d > best {
			idx, best = i, d
		}
	}

	return idx
}
