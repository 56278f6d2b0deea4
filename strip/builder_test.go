package strip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// gridIDs builds a small w×h sheet inline (two consistently wound
// triangles per cell) without reaching for the meshbuild package, which
// would close an import cycle.
func gridIDs(w, h int) []ID {
	ids := make([]ID, 0, 6*w*h)
	stride := ID(w + 1)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := ID(y)*stride + ID(x)
			b := a + 1
			c := a + stride
			d := c + 1

			ids = append(ids, a, b, c, b, d, c)
		}
	}

	return ids
}

// TestBuildTrisSymmetry asserts the mutual back-index relation on every
// stitched edge of a sheet.
func TestBuildTrisSymmetry(t *testing.T) {
	tris := buildTris(gridIDs(4, 3))
	require.Len(t, tris, 24)

	for ti := range tris {
		tr := &tris[ti]

		for slot := 0; slot < 3; slot++ {
			nb := tr.nb[slot]
			if nb == noTri {
				continue
			}

			back := int(tr.back[slot])
			require.Equal(t, int32(ti), tris[nb].nb[back], "neighbour does not point back")
			require.Equal(t, uint8(slot), tris[nb].back[back], "back indices are not mutual")
		}
	}
}

// TestBuildTrisDegrees checks the unstripped-neighbour counts of a three
// triangle band: the ends have one neighbour, the middle two.
func TestBuildTrisDegrees(t *testing.T) {
	// (0,1,2) - (2,1,3) - (2,3,4): a consistent serpentine band.
	tris := buildTris([]ID{0, 1, 2, 2, 1, 3, 2, 3, 4})
	require.Len(t, tris, 3)

	require.Equal(t, uint8(1), tris[0].degree)
	require.Equal(t, uint8(2), tris[1].degree)
	require.Equal(t, uint8(1), tris[2].degree)
}

// TestBuildTrisDegenerate drops triples with repeated ids, keeping the
// rest.
func TestBuildTrisDegenerate(t *testing.T) {
	cases := []struct {
		name string
		ids  []ID
		want int
	}{
		{"FirstPair", []ID{0, 0, 1, 2, 3, 4}, 1},
		{"SecondPair", []ID{0, 1, 1, 2, 3, 4}, 1},
		{"WrapPair", []ID{1, 0, 1, 2, 3, 4}, 1},
		{"AllEqual", []ID{5, 5, 5}, 0},
		{"NoneDegenerate", []ID{0, 1, 2, 3, 4, 5}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Len(t, buildTris(tc.ids), tc.want)
		})
	}
}

// TestBuildTrisNonManifold: four triangles on one edge pair up in
// insertion order, (0,1) and (2,3); a fifth stays unlinked.
func TestBuildTrisNonManifold(t *testing.T) {
	ids := []ID{
		2, 0, 1,
		3, 0, 1,
		4, 0, 1,
		5, 0, 1,
	}

	tris := buildTris(ids)
	require.Len(t, tris, 4)

	require.Equal(t, int32(1), tris[0].nb[1])
	require.Equal(t, int32(0), tris[1].nb[1])
	require.Equal(t, int32(3), tris[2].nb[1])
	require.Equal(t, int32(2), tris[3].nb[1])

	for i := range tris {
		require.Equal(t, uint8(1), tris[i].degree)
	}

	// A fifth incidence on the same edge finds the map slot empty again
	// and dangles forever.
	tris = buildTris(append(ids, 6, 0, 1))
	require.Len(t, tris, 5)
	require.Equal(t, noTri, tris[4].nb[1])
	require.Equal(t, uint8(0), tris[4].degree)
}

// TestBuildTrisDisconnected: triangles without shared edges stay without
// neighbours.
func TestBuildTrisDisconnected(t *testing.T) {
	tris := buildTris([]ID{0, 1, 2, 3, 4, 5})
	require.Len(t, tris, 2)

	for i := range tris {
		require.Equal(t, [3]int32{noTri, noTri, noTri}, tris[i].nb)
		require.Equal(t, uint8(0), tris[i].degree)
	}
}

// TestEdgeKey: the key is direction-independent and collision-free over
// distinct vertex pairs.
func TestEdgeKey(t *testing.T) {
	require.Equal(t, edgeKey(3, 9), edgeKey(9, 3))
	require.NotEqual(t, edgeKey(0, 1), edgeKey(0, 2))
	require.NotEqual(t, edgeKey(1, 2), edgeKey(2, 3))
}
