package meshbuild

import (
	"errors"

	"github.com/katalvlaran/tristrip/strip"
)

// ErrSize indicates a non-positive mesh dimension.
var ErrSize = errors.New("meshbuild: size must be positive")

// Grid returns the index list of a regular sheet with w×h cells and
// (w+1)×(h+1) vertices; every cell splits into two triangles. Total
// triangles: 2·w·h.
//
// Vertex layout, row-major:
//
//	0───1───2
//	│ ╱ │ ╱ │
//	3───4───5
func Grid(w, h int) ([]strip.ID, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrSize
	}

	ids := make([]strip.ID, 0, 6*w*h)
	stride := strip.ID(w + 1)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := strip.ID(y)*stride + strip.ID(x)
			b := a + 1
			c := a + stride
			d := c + 1

			ids = append(ids, a, b, c, b, d, c)
		}
	}

	return ids, nil
}

// Fan returns n triangles sharing vertex 0, rim vertices 1…n+1.
func Fan(n int) ([]strip.ID, error) {
	if n <= 0 {
		return nil, ErrSize
	}

	ids := make([]strip.ID, 0, 3*n)

	for i := 0; i < n; i++ {
		ids = append(ids, 0, strip.ID(i+1), strip.ID(i+2))
	}

	return ids, nil
}

// Serpentine returns a perfect n-triangle strip over vertices 0…n+1, wound
// consistently: even triangles (i, i+1, i+2), odd triangles (i+1, i, i+2).
func Serpentine(n int) ([]strip.ID, error) {
	if n <= 0 {
		return nil, ErrSize
	}

	ids := make([]strip.ID, 0, 3*n)

	for i := 0; i < n; i++ {
		a, b, c := strip.ID(i), strip.ID(i+1), strip.ID(i+2)

		if i%2 == 0 {
			ids = append(ids, a, b, c)
		} else {
			ids = append(ids, b, a, c)
		}
	}

	return ids, nil
}

// Soup returns n triangles with no shared vertices at all.
func Soup(n int) ([]strip.ID, error) {
	if n <= 0 {
		return nil, ErrSize
	}

	ids := make([]strip.ID, 0, 3*n)

	for i := 0; i < n; i++ {
		base := strip.ID(3 * i)
		ids = append(ids, base, base+1, base+2)
	}

	return ids, nil
}

// NonManifold returns k triangles all incident to the edge (0, 1); apex
// vertices are 2…k+1. With k ≥ 3 the edge is non-manifold.
func NonManifold(k int) ([]strip.ID, error) {
	if k <= 0 {
		return nil, ErrSize
	}

	ids := make([]strip.ID, 0, 3*k)

	for i := 0; i < k; i++ {
		ids = append(ids, strip.ID(i+2), 0, 1)
	}

	return ids, nil
}
