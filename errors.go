// SPDX-License-Identifier: MIT
// Package matcache: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// package. All operations return these sentinels and tests check them via
// errors.Is. No operation panics on user-triggered error conditions; panics
// are reserved for programmer errors in option constructors.

package matcache

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matcache: ..." for consistency and to
// allow easy grepping across logs. Do not %w-wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers still match
// via errors.Is.

var (
	// ErrNilMatrix indicates that a nil matrix was passed where a value is
	// required (construction, replacement, or an empty handle at solve time).
	ErrNilMatrix = errors.New("matcache: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input
	// has rows != cols. Construction and replacement both enforce this.
	ErrNonSquare = errors.New("matcache: matrix is not square")

	// ErrNilHandle indicates that Invert was called on a nil handle, i.e.
	// the required capability set {Matrix, Inverse, SetInverse} is absent.
	ErrNilHandle = errors.New("matcache: nil handle")

	// ErrSingular is returned when the underlying solver cannot invert the
	// current matrix. The solver's own condition diagnostics are preserved
	// in the wrapped message. Failures are never cached and never retried.
	ErrSingular = errors.New("matcache: singular matrix")
)
