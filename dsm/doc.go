// SPDX-License-Identifier: MIT

// Package dsm builds the Design Structure Matrix (DSM) of an assembly and the
// complexity metrics derived from it.
//
// What & Why
//
//   - M[i][j] is true iff valid part j intersects valid part i (strict world
//     axis overlap), indexed in design order. The diagonal is true for every
//     part with non-degenerate volume.
//   - A display permutation groups parts with similar connection patterns
//     (single-linkage clustering plus optimal leaf ordering). It is presentation
//     only and never feeds a metric.
//   - Complexity metrics drive the assembly term of the cost model:
//
//	C1    = α·n                   component count proxy
//	C2    = β·Σ(M − I)            integration connections (pairs counted twice)
//	C3    = γ·Σ σ_k(M)            structural entropy via singular values, γ = 1/n
//	Total = C1 + C2·C3
//	E     = Σ |λ_k(M − I)|        graph energy (auxiliary)
//
//     A built DSM is symmetric, so σ_k(M) = |λ_k(M)| and both spectral terms
//     come from the Jacobi solver in package matrix. Asymmetric input falls
//     back to the gonum SVD and eigen decomposition.
//
// Degenerate inputs
//
//   - n = 0: every metric is 0.
//   - n = 1: C3 is 0, so Total = α.
//   - A failed factorization yields 0 for the affected metric. Nothing here
//     returns an error or panics at run time.
//
// Complexity
//
//   - Build:   O(n²).
//   - C3, E:   O(n³) per Jacobi sweep set (gonum SVD / eigen when asymmetric).
//   - Order:   O(n³) (see package cluster).
package dsm
