// Package part models one placed part of an assembly.
//
// Construction is two-phase:
//
//  1. Raw — the plain placement record (type id, LDraw color, position,
//     rotation) produced by ingestion.
//  2. Resolve — looks the record up in a catalog.Catalog and a
//     catalog.ValidTypeSet. A part that resolves carries a *Resolved payload
//     with its world-space geometry; one that does not keeps Resolved == nil
//     and only exists for reporting.
//
// Predicates
//
//   - Intersects(a, b, inclusive): world-axis interval overlap of the two
//     parts' vertex sets. Strict by default; false when either part has no
//     geometry. Symmetric, and true for Intersects(a, a) whenever a has
//     non-degenerate volume.
//   - (Part).IsAligned(forward): true when the part declares no forward axes,
//     or when any declared local forward axis, rotated by the part's rotation,
//     has a positive (rounded) dot product with the design's forward axis.
//
// Parts are immutable after Resolve and safe to share between goroutines.
package part
