// SPDX-License-Identifier: MIT

// Package matcache: canonical validation checks.
//
// Purpose:
//   - Provide a single source of truth for the nil/shape guards shared by
//     construction, replacement, and the solve path.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly.
//
// All checks are pure, deterministic, and allocate nothing.
package matcache

import "gonum.org/v1/gonum/mat"

// ValidateSquare ensures m is a usable square matrix.
//
// Errors: ErrNilMatrix if m is nil, ErrNonSquare if rows != cols.
// Complexity: O(1).
func ValidateSquare(m *mat.Dense) error {
	if m == nil {
		return ErrNilMatrix
	}
	if r, c := m.Dims(); r != c {
		return ErrNonSquare
	}

	return nil
}

// isInverseOf reports whether inv is the multiplicative inverse of m
// within eps, i.e. m·inv ≈ I element-wise. Both inputs must be non-nil
// square matrices of the same order; anything else is a mismatch.
//
// Complexity: O(n³) for the product, O(n²) for the comparison.
func isInverseOf(m, inv *mat.Dense, eps float64) bool {
	if m == nil || inv == nil {
		return false
	}
	n, c := m.Dims()
	if ir, ic := inv.Dims(); n != c || ir != n || ic != n {
		return false
	}

	var prod mat.Dense
	prod.Mul(m, inv)

	return mat.EqualApprox(&prod, identity(n), eps)
}

// identity returns the n×n identity matrix.
func identity(n int) *mat.Dense {
	id := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		id.Set(i, i, 1)
	}

	return id
}
