package meshbuild_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tristrip/meshbuild"
	"github.com/katalvlaran/tristrip/strip"
)

// requireTriangles asserts the list has the expected triangle count and no
// degenerate triples.
func requireTriangles(t *testing.T, ids []strip.ID, want int) {
	t.Helper()

	require.Len(t, ids, 3*want)

	for i := 0; i+2 < len(ids); i += 3 {
		a, b, c := ids[i], ids[i+1], ids[i+2]
		require.True(t, a != b && b != c && c != a, "degenerate triangle at %d", i/3)
	}
}

// requireConsistentWinding asserts no directed edge occurs twice: in a
// consistently wound mesh, two triangles sharing an edge traverse it in
// opposite directions.
func requireConsistentWinding(t *testing.T, ids []strip.ID) {
	t.Helper()

	seen := map[[2]strip.ID]bool{}

	for i := 0; i+2 < len(ids); i += 3 {
		tri := [3]strip.ID{ids[i], ids[i+1], ids[i+2]}

		for j := 0; j < 3; j++ {
			edge := [2]strip.ID{tri[j], tri[(j+1)%3]}
			require.False(t, seen[edge], "directed edge %v repeated", edge)
			seen[edge] = true
		}
	}
}

func TestGrid(t *testing.T) {
	ids, err := meshbuild.Grid(3, 2)
	require.NoError(t, err)

	requireTriangles(t, ids, 12)
	requireConsistentWinding(t, ids)

	// Vertex ids stay inside the (w+1)×(h+1) lattice.
	for _, id := range ids {
		require.Less(t, uint32(id), uint32(12))
	}
}

func TestFan(t *testing.T) {
	ids, err := meshbuild.Fan(5)
	require.NoError(t, err)

	requireTriangles(t, ids, 5)
	requireConsistentWinding(t, ids)

	// Every triangle contains the center vertex.
	for i := 0; i+2 < len(ids); i += 3 {
		require.Equal(t, strip.ID(0), ids[i])
	}
}

func TestSerpentine(t *testing.T) {
	ids, err := meshbuild.Serpentine(6)
	require.NoError(t, err)

	requireTriangles(t, ids, 6)
	requireConsistentWinding(t, ids)
}

func TestSoup(t *testing.T) {
	ids, err := meshbuild.Soup(4)
	require.NoError(t, err)

	requireTriangles(t, ids, 4)

	// No vertex shared between triangles at all.
	seen := map[strip.ID]bool{}
	for _, id := range ids {
		require.False(t, seen[id])
		seen[id] = true
	}
}

func TestNonManifold(t *testing.T) {
	ids, err := meshbuild.NonManifold(4)
	require.NoError(t, err)

	requireTriangles(t, ids, 4)

	// Every triangle carries the shared edge (0, 1).
	for i := 0; i+2 < len(ids); i += 3 {
		require.Equal(t, strip.ID(0), ids[i+1])
		require.Equal(t, strip.ID(1), ids[i+2])
	}
}

// TestErrSize: every generator rejects non-positive dimensions.
func TestErrSize(t *testing.T) {
	_, err := meshbuild.Grid(0, 3)
	require.ErrorIs(t, err, meshbuild.ErrSize)
	_, err = meshbuild.Grid(3, -1)
	require.ErrorIs(t, err, meshbuild.ErrSize)
	_, err = meshbuild.Fan(0)
	require.ErrorIs(t, err, meshbuild.ErrSize)
	_, err = meshbuild.Serpentine(0)
	require.ErrorIs(t, err, meshbuild.ErrSize)
	_, err = meshbuild.Soup(-2)
	require.ErrorIs(t, err, meshbuild.ErrSize)
	_, err = meshbuild.NonManifold(0)
	require.ErrorIs(t, err, meshbuild.ErrSize)
}
