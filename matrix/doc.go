// SPDX-License-Identifier: MIT

// Package matrix provides the dense row-major matrix behind the Design
// Structure Matrix and a Jacobi eigen solver for symmetric matrices.
//
// What & Why:
//
//	A DSM of parts is the adjacency matrix of an undirected graph with
//	self-loops: intersection is symmetric, so M and M − I are symmetric.
//	For a symmetric matrix the singular values are the absolute values of
//	its eigenvalues, so one symmetric eigen solver yields both the
//	structural-complexity term Σσ(M) and the graph energy Σ|λ(M − I)|.
//
// Numeric policy:
//
//   - Public accessors never panic; they return the package sentinels.
//   - Loop orders are fixed (row-major, p→q sweeps), so results are
//     reproducible bit for bit.
//
// Complexity:
//
//	NewDense / FromBools: O(n²).
//	At / Set:             O(1).
//	EigenSym:             O(sweeps · n³), typically fewer than 10 sweeps.
package matrix
