package matcache_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cameronbrown/matcache"
)

// ExampleInvert demonstrates the memoized inversion round trip: the
// first call computes, the second is served from the cache.
func ExampleInvert() {
	m := mat.NewDense(2, 2, []float64{
		-1, 1,
		-2, 1,
	})

	handle, err := matcache.NewCachedMatrix(m)
	if err != nil {
		fmt.Println("construct:", err)
		return
	}

	inv, err := matcache.Invert(handle)
	if err != nil {
		fmt.Println("invert:", err)
		return
	}
	fmt.Println(inv.At(0, 0), inv.At(0, 1))
	fmt.Println(inv.At(1, 0), inv.At(1, 1))

	// The second call never touches the solver.
	again, _ := matcache.Invert(handle)
	fmt.Println("same instance:", again == inv)

	// Output:
	// 1 -1
	// 2 -1
	// same instance: true
}

// ExampleCachedMatrix_SetMatrix demonstrates invalidation on replacement.
func ExampleCachedMatrix_SetMatrix() {
	handle, _ := matcache.NewCachedMatrix(mat.NewDense(2, 2, []float64{
		-1, 1,
		-2, 1,
	}))
	_, _ = matcache.Invert(handle)

	_, cached := handle.Inverse()
	fmt.Println("cached before replacement:", cached)

	_ = handle.SetMatrix(mat.NewDense(2, 2, []float64{
		2, 0,
		0, 2,
	}))
	_, cached = handle.Inverse()
	fmt.Println("cached after replacement:", cached)

	inv, _ := matcache.Invert(handle)
	fmt.Println(inv.At(0, 0), inv.At(1, 1))

	// Output:
	// cached before replacement: true
	// cached after replacement: false
	// 0.5 0.5
}

// ExampleInvertPlain shows the contrast variant on public fields.
func ExampleInvertPlain() {
	record, _ := matcache.NewPlainMatrix(mat.NewDense(2, 2, []float64{
		-1, 1,
		-2, 1,
	}))

	inv, _ := matcache.InvertPlain(record)
	fmt.Println(inv.At(0, 0), inv.At(0, 1))
	fmt.Println(inv.At(1, 0), inv.At(1, 1))

	// Output:
	// 1 -1
	// 2 -1
}
