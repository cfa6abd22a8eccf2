// Package matcache memoizes matrix inversion: the inverse of a square
// matrix is computed lazily on first request and served from a per-handle
// cache until the underlying matrix is replaced.
//
// What:
//
//   - CachedMatrix wraps a square *mat.Dense together with an optional
//     cached inverse behind accessor methods; replacing the matrix through
//     SetMatrix atomically invalidates the cache.
//   - Invert returns the inverse of a handle's matrix, computing and
//     storing it on a cache miss and returning the stored value on a hit.
//   - PlainMatrix is the same idea with exported fields and no
//     invalidation path, kept as a design contrast (see plain.go).
//
// Why:
//
//   - Inversion is O(n³); repeated solves against an unchanged matrix are
//     pure waste. Caching turns every call after the first into an O(1)
//     lookup.
//   - The handle form keeps the cache invariant (stored inverse matches
//     the current matrix) enforceable in one place.
//
// Concurrency:
//
//   - CachedMatrix is safe for concurrent use. Invert runs the whole
//     check-compute-store sequence under the handle lock, so concurrent
//     callers on one handle compute at most once.
//   - PlainMatrix is intentionally unsynchronized.
//
// Numerics:
//
//	Inversion delegates to gonum (gonum.org/v1/gonum/mat). Solver
//	failures on singular input surface as ErrSingular with the solver's
//	condition diagnostics preserved; nothing is cached on failure.
//
// Errors:
//
//   - ErrNilMatrix: nil matrix at construction, replacement, or solve.
//   - ErrNonSquare: rows != cols at construction or replacement.
//   - ErrNilHandle: Invert on a nil handle.
//   - ErrSingular: the solver rejected the matrix.
//
// Diagnostics ("solving", "caching") are emitted through an injected
// apex/log logger and are observability output only — absence of the
// "solving" entry is the visible proof of a cache hit. The default logger
// discards everything.
package matcache
