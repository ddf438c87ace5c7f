// SPDX-License-Identifier: MIT

package dsm

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvdesign/matrix"
)

// Complexity bundles the three metrics and their combination.
type Complexity struct {
	C1    float64 `json:"c1"`
	C2    float64 `json:"c2"`
	C3    float64 `json:"c3"`
	Total float64 `json:"total"`
}

// C1 returns α·n.
func C1(m Matrix, opts ...Option) float64 {
	o := gatherOptions(opts)

	return o.alpha * float64(m.Len())
}

// C2 returns β·Σ(M − I).
// A false diagonal entry contributes −1, exactly as the literal formula does.
func C2(m Matrix, opts ...Option) float64 {
	o := gatherOptions(opts)

	return o.beta * float64(m.Sum()-m.Len())
}

// C3 returns γ·Σσ over the singular values of M.
// A symmetric M has σ = |λ|, taken from the Jacobi eigen solver; any other
// matrix goes through the gonum SVD.
// Matrices smaller than 2×2 and failed factorizations yield 0.
func C3(m Matrix, opts ...Option) float64 {
	o := gatherOptions(opts)
	n := m.Len()
	if n < 2 {
		return 0
	}

	if s, ok := absEigenSum(m, 0); ok {
		return o.gammaFor(n) * s
	}
	var svd mat.SVD
	if ok := svd.Factorize(m.Dense(0), mat.SVDNone); !ok {
		return 0
	}
	var s float64
	for _, v := range svd.Values(nil) {
		s += v
	}

	return o.gammaFor(n) * s
}

// Compute returns C1, C2, C3 and Total = C1 + C2·C3.
func Compute(m Matrix, opts ...Option) Complexity {
	c := Complexity{C1: C1(m, opts...), C2: C2(m, opts...), C3: C3(m, opts...)}
	c.Total = c.C1 + c.C2*c.C3

	return c
}

// Total returns C1 + C2·C3.
func Total(m Matrix, opts ...Option) float64 { return Compute(m, opts...).Total }

// GraphEnergy returns Σ|λ| over the eigenvalues of M − I.
// Symmetric matrices use the Jacobi solver, others the gonum eigen
// decomposition. An empty matrix or a failed factorization yields 0.
func GraphEnergy(m Matrix) float64 {
	if m.Len() == 0 {
		return 0
	}

	if e, ok := absEigenSum(m, 1); ok {
		return e
	}
	var eig mat.Eigen
	if ok := eig.Factorize(m.Dense(1), mat.EigenNone); !ok {
		return 0
	}
	var e float64
	for _, v := range eig.Values(nil) {
		e += cmplx.Abs(v)
	}

	return e
}

// absEigenSum returns Σ|λ(M − shift·I)| when M is symmetric.
// ok is false for an asymmetric or empty M and when Jacobi does not converge.
func absEigenSum(m Matrix, shift float64) (sum float64, ok bool) {
	if !m.Symmetric() {
		return 0, false
	}
	a, err := m.Adjacency(shift)
	if err != nil {
		return 0, false
	}
	vals, err := matrix.EigenSym(a, matrix.DefaultEigenTolerance, matrix.DefaultMaxSweeps)
	if err != nil {
		return 0, false
	}
	for _, v := range vals {
		sum += math.Abs(v)
	}

	return sum, true
}
