// Package requirements validates a design against the eight structural and
// functional rules of a road-legal vehicle.
//
// Rules (each reported with its supporting counts and per-part flags):
//
//  1. only valid parts: no part failed resolution or recognition
//  2. fully connected: exactly one intersection-connected group
//  3. exactly one steering wheel
//  4. at least one seat, aligned
//  5. at least four wheels, aligned and on the bottom face
//  6. at least two headlights, aligned and on the front face
//  7. at least two taillights, aligned and on the back face
//  8. exactly one license plate, aligned and on the back face
//
// Counting runs over every part in the design, resolved or not; lights and
// plates are told apart by the catalog BrickLink color. A part is "on" a face
// when one of its vertices lies within the positioning tolerance of the
// design's outermost projection along that face's outward axis.
//
// Analyze never fails: a degenerate design simply fails the rules it cannot
// satisfy.
package requirements
