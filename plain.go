// SPDX-License-Identifier: MIT

// Package matcache: PlainMatrix, the non-encapsulated contrast variant.
//
// PlainMatrix exposes the same two pieces of state as CachedMatrix but as
// exported fields. There is deliberately no SetMatrix and therefore no
// invalidation: assigning Mat directly leaves a stale Inv in place. The
// variant demonstrates what the accessor discipline of CachedMatrix buys;
// it is not the recommended API.
package matcache

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// NewPlainMatrix builds a PlainMatrix record with an empty inverse.
// Construction applies the same validation as NewCachedMatrix.
//
// Errors: ErrNilMatrix, ErrNonSquare.
func NewPlainMatrix(m *mat.Dense) (*PlainMatrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("NewPlainMatrix: %w", err)
	}

	return &PlainMatrix{Mat: m}, nil
}

// InvertPlain returns the inverse of p.Mat, computing and storing it into
// p.Inv on first call and returning the stored value thereafter.
//
// Because solve and store happen on public fields rather than through
// accessors, the two steps are not separable: a miss emits the single
// "solving & caching" entry instead of the two-step diagnostics of
// Invert. Once computed, the cached inverse is trusted for the lifetime
// of the record — there is no invalidation path.
//
// Errors: ErrNilHandle, ErrNilMatrix, ErrNonSquare (Mat was reassigned
// to a non-square value), ErrSingular (cache untouched on failure).
//
// Complexity: O(1) on a hit, O(n³) on a miss. Not safe for concurrent use.
func InvertPlain(p *PlainMatrix, opts ...Option) (*mat.Dense, error) {
	if p == nil {
		return nil, ErrNilHandle
	}
	if p.Inv != nil {
		return p.Inv, nil
	}
	// Re-check the shape on every miss: Mat is a public field and may
	// have been reassigned since construction. gonum panics on
	// non-square input, so the guard must run first.
	if err := ValidateSquare(p.Mat); err != nil {
		return nil, fmt.Errorf("InvertPlain: %w", err)
	}

	o := gatherOptions(opts...)
	o.logger.Info(msgSolvingCaching)

	var inv mat.Dense
	if err := inv.Inverse(p.Mat); err != nil {
		return nil, fmt.Errorf("InvertPlain: %w: %v", ErrSingular, err)
	}
	p.Inv = &inv

	return p.Inv, nil
}
