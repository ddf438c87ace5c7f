// Package geom holds the small amount of 3-D geometry the design engine needs:
// vectors, rotation matrices, part bounding vertices, per-axis bounds and the
// convex-hull volume of a point cloud.
//
// What
//
//   - Vec is gonum's spatial/r3.Vec; every helper here accepts and returns it.
//   - Rotation is a row-major 3×3 matrix as found in LDraw placement records.
//   - Box + Transform turn a catalog bounding box (offset, dimensions) into the
//     eight world-space vertices of a placed part.
//   - Bounds / Overlaps implement the world-axis interval test used for
//     intersection.
//   - HullVolume computes the volume enclosed by the convex hull of a point set.
//
// Grid semantics
//
//	Transformed vertices are rounded to the nearest integer (ties to even), so
//	all later geometric tests run on an integer LDU grid. A rotated box is NOT
//	re-fitted: its eight transformed corners are carried as-is, and the world
//	axis bounds of those corners over-approximate the rotated solid.
//
// Complexity
//
//   - Box, Transform, Bounds: O(1) per part.
//   - HullVolume: O(P·F) where P = points and F = faces of the running hull.
//
// All functions are pure and safe for concurrent use.
package geom
