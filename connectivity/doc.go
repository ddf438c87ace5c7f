// SPDX-License-Identifier: MIT

// Package connectivity partitions the valid parts of a design into maximal
// groups connected through pairwise intersection.
//
// What & Why
//
//   - Two parts belong to the same group when a chain of intersecting parts
//     links them. A design whose group count is 1 is a single rigid structure.
//   - The partition feeds the "fully connected" requirement and is the graph
//     view behind the design structure matrix.
//
// Algorithm
//
//	A disjoint set (union by rank, path compression) is fed every adjacent
//	pair (i, j), j < i, in input order. The resulting partition equals the
//	one produced by incrementally merging each new part with every existing
//	group it touches, so the count is invariant to the input order.
//
// Determinism
//
//	Groups are returned ordered by their smallest member; members ascend.
//
// Complexity
//
//   - Time:   O(N²·T) where T is the cost of one adjacency test.
//   - Memory: O(N).
package connectivity
