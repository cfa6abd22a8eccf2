// Package matcache_test contains unit tests for the shared validators.
package matcache_test

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/cameronbrown/matcache"
)

// TestValidateSquare verifies the nil/shape guard used by every
// construction and replacement path.
func TestValidateSquare(t *testing.T) {
	cases := []struct {
		name string
		m    *mat.Dense
		err  error
	}{
		{"Nil", nil, matcache.ErrNilMatrix},
		{"Square1x1", mat.NewDense(1, 1, nil), nil},
		{"Square4x4", mat.NewDense(4, 4, nil), nil},
		{"Wide2x5", mat.NewDense(2, 5, nil), matcache.ErrNonSquare},
		{"Tall5x2", mat.NewDense(5, 2, nil), matcache.ErrNonSquare},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := matcache.ValidateSquare(tc.m)
			if tc.err == nil {
				if err != nil {
					t.Errorf("ValidateSquare = %v; want nil", err)
				}
				return
			}
			if !errors.Is(err, tc.err) {
				t.Errorf("ValidateSquare = %v; want %v", err, tc.err)
			}
		})
	}
}
