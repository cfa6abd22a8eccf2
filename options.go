// SPDX-License-Identifier: MIT

// Package matcache: functional configuration for handles and the Invert
// facade. This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matcache

import (
	"math"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the non-negative tolerance used by the optional
	// verify-on-store check when comparing A·A⁻¹ against the identity.
	DefaultEpsilon = 1e-9

	// DefaultVerifyOnStore keeps SetInverse on the trusted-caller
	// contract: stored inverses are not checked against the matrix.
	DefaultVerifyOnStore = false
)

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "matcache: WithEpsilon: eps must be finite, non-negative"

// ---------- Diagnostic messages ----------

// Log messages are constants so tests can assert on them verbatim.
const (
	msgSolving        = "solving"
	msgCaching        = "caching"
	msgSolvingCaching = "solving & caching"
	msgNilOption      = "matcache: nil Option ignored"
	msgRejectedStore  = "matcache: SetInverse: rejected non-inverse store"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

// options carries the resolved configuration. Unexported on purpose:
// consumers go through WithX constructors.
type options struct {
	logger        log.Interface
	epsilon       float64
	verifyOnStore bool
}

// WithLogger routes the package diagnostics ("solving", "caching",
// warning entries) to l. A nil l restores the default discard logger.
func WithLogger(l log.Interface) Option {
	return func(o *options) {
		if l == nil {
			o.logger = defaultLogger
			return
		}
		o.logger = l
	}
}

// WithEpsilon sets the tolerance used by the verify-on-store check.
// Panics if eps is negative, NaN, or ±Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.epsilon = eps }
}

// WithVerifyOnStore makes SetInverse verify that the stored matrix
// actually inverts the current one (A·A⁻¹ ≈ I within epsilon). A store
// that fails the check is ignored with a warning entry. Off by default:
// the minimal contract trusts the caller.
func WithVerifyOnStore() Option {
	return func(o *options) { o.verifyOnStore = true }
}

// WithNoVerifyOnStore restores the trusted-caller contract explicitly.
func WithNoVerifyOnStore() Option {
	return func(o *options) { o.verifyOnStore = false }
}

// defaultLogger swallows everything; diagnostics are opt-in.
var defaultLogger log.Interface = &log.Logger{
	Handler: discard.New(),
	Level:   log.InfoLevel,
}

// defaultOptions returns the documented zero-configuration behavior.
// MUST stay in sync with the Default* constants above.
func defaultOptions() options {
	return options{
		logger:        defaultLogger,
		epsilon:       DefaultEpsilon,
		verifyOnStore: DefaultVerifyOnStore,
	}
}

// gatherOptions folds user options over the defaults. Nil entries in the
// variadic slice are skipped and reported once at warning level — extra
// or ignored arguments are non-fatal here.
func gatherOptions(user ...Option) options {
	return foldOptions(defaultOptions(), user...)
}

// foldOptions applies user options over an explicit base. Invert uses it
// to seed call-site options from the handle's construction options, so a
// logger given to NewCachedMatrix also drives the invert diagnostics.
func foldOptions(base options, user ...Option) options {
	o := base
	skipped := 0
	for _, opt := range user {
		if opt == nil {
			skipped++
			continue
		}
		opt(&o)
	}
	if skipped > 0 {
		o.logger.WithField("ignored", skipped).Warn(msgNilOption)
	}

	return o
}
