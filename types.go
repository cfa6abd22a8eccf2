// SPDX-License-Identifier: MIT

// Package matcache: domain types. Errors and options live in dedicated
// files (errors.go, options.go) per the package conventions.
package matcache

import (
	"sync"

	"gonum.org/v1/gonum/mat"
)

// InverseCacher is the capability set Invert requires from a handle:
// read the current matrix, read the cached inverse, store a computed
// inverse. CachedMatrix satisfies it; custom implementations may bring
// their own storage, but then exclusion around check-compute-store is
// their concern (see Invert).
type InverseCacher interface {
	// Matrix returns the current matrix. Must not return a stale value
	// after a concurrent replacement completes.
	Matrix() *mat.Dense

	// Inverse returns the cached inverse and whether one is present.
	// Must not trigger computation.
	Inverse() (*mat.Dense, bool)

	// SetInverse stores inv as the cached inverse. Trusted-caller
	// contract: no verification that inv actually inverts the matrix.
	SetInverse(inv *mat.Dense)
}

// CachedMatrix is an opaque handle around a square matrix and its lazily
// computed inverse.
//
// Invariant: inverse is nil (absent) or equals the true inverse of value;
// SetMatrix clears inverse under the same lock that replaces value, so no
// reader can observe a stale pairing.
//
// The zero value is not usable; construct via NewCachedMatrix.
type CachedMatrix struct {
	mu      sync.RWMutex
	value   *mat.Dense // current square matrix (never nil after construction)
	inverse *mat.Dense // cached inverse; nil means absent
	opts    options    // resolved construction options (verify policy, logger)
}

// Compile-time conformance checks.
var _ InverseCacher = (*CachedMatrix)(nil)

// PlainMatrix is the non-encapsulated variant of CachedMatrix: the same
// two fields, exported, with no accessors and no invalidation path.
//
// It exists purely as a design contrast. Any holder can assign Mat
// without clearing Inv, so once computed the cached inverse is trusted
// for the lifetime of the record — replace the record, not the field, if
// the matrix changes. This latent inconsistency is deliberate; do not
// "fix" it here, use CachedMatrix instead.
type PlainMatrix struct {
	// Mat is the matrix to invert.
	Mat *mat.Dense
	// Inv is the cached inverse, nil until InvertPlain populates it.
	Inv *mat.Dense
}
