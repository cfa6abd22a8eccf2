// Package matcache_test: shared helpers for the package tests.
//
// The memory-handler logger is the observability probe the contract
// asks for: a cache hit is proven by the absence of new "solving"
// entries, not by timing.
package matcache_test

import (
	"math/rand"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"gonum.org/v1/gonum/mat"
)

// mustDense builds an r×c matrix from row-major data, failing fast on a
// programmer error in the test fixture itself.
func mustDense(t testing.TB, r, c int, data []float64) *mat.Dense {
	t.Helper()
	if len(data) != r*c {
		t.Fatalf("fixture: want %d elements for %dx%d, got %d", r*c, r, c, len(data))
	}

	return mat.NewDense(r, c, data)
}

// newMemoryLogger returns a logger whose entries are inspectable after
// the fact, plus the handler holding them.
func newMemoryLogger() (log.Interface, *memory.Handler) {
	h := memory.New()

	return &log.Logger{Handler: h, Level: log.InfoLevel}, h
}

// countEntries counts handler entries carrying exactly msg.
func countEntries(h *memory.Handler, msg string) int {
	n := 0
	for _, e := range h.Entries {
		if e.Message == msg {
			n++
		}
	}

	return n
}

// diagDominant returns a deterministic n×n strictly diagonally dominant
// matrix — guaranteed invertible, so property tests never trip over an
// accidental singularity.
func diagDominant(t testing.TB, n int, seed int64) *mat.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				m.Set(i, j, float64(n)+1.0)
				continue
			}
			m.Set(i, j, rng.Float64())
		}
	}

	return m
}
