// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"sort"
)

// Defaults of EigenSym for 0/1 adjacency matrices.
const (
	DefaultEigenTolerance = 1e-10
	DefaultMaxSweeps      = 64
)

const opEigen = "EigenSym"

// EigenSym returns the eigenvalues of the symmetric matrix m in ascending
// order, using cyclic Jacobi rotations.
//
// Steps:
//  1. Validate m symmetric within tol; work on a copy.
//  2. Sweep every (p, q), p < q, in row-major order and zero A[p,q] with a
//     Jacobi rotation; entries already within tol are skipped.
//  3. Stop once max |A[p,q]| < tol; fail after maxSweeps sweeps.
//  4. Return the sorted diagonal.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrAsymmetry, ErrEigenFailed.
// Complexity: O(sweeps · n³) time, O(n²) memory.
func EigenSym(m *Dense, tol float64, maxSweeps int) ([]float64, error) {
	// 1.
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	tol = math.Abs(tol)
	a := m.Clone()
	n := a.r

	// 2–3.
	converged := a.maxOffDiagonal() < tol
	for sweep := 0; sweep < maxSweeps && !converged; sweep++ {
		for p := 0; p < n-1; p++ {
			for q := p + 1; q < n; q++ {
				a.rotate(p, q, tol)
			}
		}
		converged = a.maxOffDiagonal() < tol
	}
	if !converged {
		return nil, matrixErrorf(opEigen, ErrEigenFailed)
	}

	// 4.
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = a.data[i*n+i]
	}
	sort.Float64s(vals)

	return vals, nil
}

// rotate applies the Jacobi rotation that zeroes A[p,q] and A[q,p].
func (a *Dense) rotate(p, q int, tol float64) {
	n := a.r
	apq := a.data[p*n+q]
	if math.Abs(apq) <= tol {
		return
	}
	app, aqq := a.data[p*n+p], a.data[q*n+q]

	// θ = (aqq − app)/(2·apq), t = sign(θ)/(|θ| + √(θ²+1))
	theta := (aqq - app) / (2 * apq)
	t := math.Copysign(1/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
	c := 1 / math.Sqrt(t*t+1)
	s := t * c

	for i := 0; i < n; i++ {
		if i == p || i == q {
			continue
		}
		aip, aiq := a.data[i*n+p], a.data[i*n+q]
		ip := c*aip - s*aiq
		iq := s*aip + c*aiq
		a.data[i*n+p], a.data[p*n+i] = ip, ip
		a.data[i*n+q], a.data[q*n+i] = iq, iq
	}
	a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
	a.data[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
	a.data[p*n+q], a.data[q*n+p] = 0, 0
}

func (a *Dense) maxOffDiagonal() float64 {
	n := a.r
	var best float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if v := math.Abs(a.data[i*n+j]); v > best {
				best = v
			}
		}
	}

	return best
}
