// Package design is the Design Aggregate: an ordered list of placed parts and
// the whole-assembly measurements derived from its valid parts.
//
// Derived measurements (computed on demand, never stored):
//
//   - hull points, convex-hull volume, per-axis size
//   - forward, top and driver-side axes (taken from the first steering wheel)
//   - width, length, height along those axes
//   - mass, material cost, seat count, cargo volume
//   - wheelbase and track (zero with fewer than four wheels)
//   - number of intersection-connected components
//
// Every measurement considers valid parts only. A design with no valid part
// yields zero-valued measurements instead of failing.
//
// Units: positions and sizes are in LDU (1 LDU = 0.4 mm); Measurements scales
// them to millimetres and cubic centimetres for reporting.
package design
