// SPDX-License-Identifier: MIT

// Package matcache: CachedMatrix handle and the Invert facade.
//
// The handle owns both pieces of state (matrix + cached inverse) behind a
// per-handle RWMutex, so the cache invariant — stored inverse matches the
// current matrix — is enforced in exactly one place. Invert performs the
// whole check-compute-store sequence inside one critical section, which
// guarantees at-most-once computation per cache generation even under
// concurrent callers.
package matcache

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// NewCachedMatrix wraps m in a handle with an empty inverse cache.
//
// Inputs:
//   - m: non-nil square matrix. The handle aliases m; treat it as owned
//     by the handle after construction.
//   - opts: WithLogger, WithEpsilon, WithVerifyOnStore, ... They govern
//     the handle's own operations (SetInverse verification and warnings)
//     and serve as the base for Invert on this handle, where call-site
//     options override them.
//
// Errors:
//   - ErrNilMatrix if m is nil.
//   - ErrNonSquare if rows != cols.
//
// Complexity: O(1) — no copy, no computation.
func NewCachedMatrix(m *mat.Dense, opts ...Option) (*CachedMatrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("NewCachedMatrix: %w", err)
	}

	return &CachedMatrix{
		value: m,
		opts:  gatherOptions(opts...),
	}, nil
}

// SetMatrix replaces the wrapped matrix and unconditionally clears the
// cached inverse. Replacement re-validates the input: a handle never
// holds a nil or non-square matrix.
//
// Errors: ErrNilMatrix, ErrNonSquare. On error the handle keeps its
// previous matrix and cache untouched.
//
// Complexity: O(1).
func (c *CachedMatrix) SetMatrix(m *mat.Dense) error {
	if err := ValidateSquare(m); err != nil {
		return fmt.Errorf("SetMatrix: %w", err)
	}

	c.mu.Lock()
	c.value = m
	c.inverse = nil // invalidation: the cache belongs to the old matrix
	c.mu.Unlock()

	return nil
}

// Matrix returns the current matrix. No side effects.
func (c *CachedMatrix) Matrix() *mat.Dense {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.value
}

// SetInverse stores inv as the cached inverse under the trusted-caller
// contract: by default no verification is performed. With
// WithVerifyOnStore enabled, a store that does not satisfy
// value·inv ≈ I within epsilon is ignored and reported at warning level.
//
// A nil inv always clears the cache (manual invalidation).
//
// Complexity: O(1) by default; O(n³) with verify-on-store.
func (c *CachedMatrix) SetInverse(inv *mat.Dense) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if inv == nil {
		c.inverse = nil
		return
	}
	if c.opts.verifyOnStore && !isInverseOf(c.value, inv, c.opts.epsilon) {
		c.opts.logger.Warn(msgRejectedStore)
		return
	}
	c.inverse = inv
}

// Inverse returns the cached inverse and whether one is present. It
// never computes; use Invert for the compute-on-miss behavior.
func (c *CachedMatrix) Inverse() (*mat.Dense, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.inverse, c.inverse != nil
}

// String implements fmt.Stringer with a compact one-line summary.
func (c *CachedMatrix) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	r, cols := c.value.Dims()

	return fmt.Sprintf("CachedMatrix(%dx%d, cached=%t)", r, cols, c.inverse != nil)
}

// Invert returns the inverse of the handle's matrix.
//
// Implementation:
//   - Cache hit: return the stored inverse immediately — zero
//     computation, zero diagnostics.
//   - Cache miss: emit "solving", invert via gonum, emit "caching",
//     store through the handle, return the fresh inverse.
//
// For a *CachedMatrix the whole sequence runs under the handle lock
// (at-most-once computation per cache generation), and the handle's
// construction options serve as the base for opts. For a foreign
// InverseCacher the sequence is uncoordinated and only call-site options
// apply; exclusion, if needed, is the implementation's concern.
//
// Errors:
//   - ErrNilHandle if c is nil.
//   - ErrNilMatrix / ErrNonSquare if the handle exposes a nil or
//     non-square matrix (possible only for foreign implementations; a
//     CachedMatrix never holds one).
//   - ErrSingular (wrapping the solver diagnostics) if the matrix cannot
//     be inverted. The cache keeps its prior state; failures are never
//     cached and never retried.
//
// Complexity: O(1) on a hit, O(n³) on a miss.
func Invert(c InverseCacher, opts ...Option) (*mat.Dense, error) {
	if c == nil {
		return nil, ErrNilHandle
	}
	if h, ok := c.(*CachedMatrix); ok {
		if h == nil {
			return nil, ErrNilHandle
		}

		// Construction options are the base; call-site options override.
		return h.invert(foldOptions(h.opts, opts...))
	}

	o := gatherOptions(opts...)
	if inv, ok := c.Inverse(); ok {
		return inv, nil
	}
	inv, err := solve(c.Matrix(), o)
	if err != nil {
		return nil, err
	}
	o.logger.Info(msgCaching)
	c.SetInverse(inv)

	return inv, nil
}

// invert is the locked check-compute-store sequence behind Invert. The
// freshly solved inverse is written directly (not through SetInverse):
// it holds the invariant by construction, and re-entering the lock or
// re-verifying our own product would be wasted work.
func (c *CachedMatrix) invert(o options) (*mat.Dense, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inverse != nil {
		return c.inverse, nil
	}

	inv, err := solve(c.value, o)
	if err != nil {
		return nil, err
	}
	o.logger.Info(msgCaching)
	c.inverse = inv

	return inv, nil
}

// solve computes m⁻¹ through gonum, announcing the computation first so
// a cache hit is distinguishable by the absence of the entry.
//
// The shape guard runs here as well as at construction: a foreign
// InverseCacher may hand back any matrix, and gonum panics on non-square
// input instead of reporting it.
func solve(m *mat.Dense, o options) (*mat.Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("Invert: %w", err)
	}

	o.logger.Info(msgSolving)

	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		return nil, fmt.Errorf("Invert: %w: %v", ErrSingular, err)
	}

	return &inv, nil
}
