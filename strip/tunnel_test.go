package strip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// pairMesh returns two triangles sharing the edge (1,2).
func pairMesh() *mesh {
	return &mesh{tris: buildTris([]ID{0, 1, 2, 3, 1, 2})}
}

// TestDigTunnelMergesIsolatedPair: two isolated one-triangle strips across
// one shared edge collapse into a single strip of two.
func TestDigTunnelMergesIsolatedPair(t *testing.T) {
	m := pairMesh()

	endpoints := noTri
	count := m.preprocIsolated(&endpoints)
	require.Equal(t, 2, count)

	opts := DefaultOptions()
	opts.MaxCount = rectifyMaxCount(opts.MaxCount, len(m.tris))

	count = m.tunnelStrips(&endpoints, count, opts)
	require.Equal(t, 1, count)

	// The shared edge is strong from both sides now.
	require.True(t, m.tris[0].isLinked(1))
	require.True(t, m.tris[1].isLinked(1))

	// Both triangles were isolated endpoints; they must stay endpoints.
	require.True(t, m.tris[0].isEndpoint())
	require.True(t, m.tris[1].isEndpoint())
}

// TestDigTunnelNoWeakEdges: an endpoint whose only neighbour already
// belongs to the same strip cannot start a tunnel.
func TestDigTunnelNoWeakEdges(t *testing.T) {
	m := pairMesh()

	endpoints := noTri
	count := m.preprocStripify(&endpoints)
	require.Equal(t, 1, count)

	tunnel := make([]int32, 2)
	opts := DefaultOptions()
	opts.MaxCount = 2

	_, ok := m.digTunnel(endpoints, tunnel, opts)
	require.False(t, ok)

	// The failed dig leaves no visited marks behind.
	for i := range m.tris {
		require.False(t, m.tris[i].isVisited())
	}
}

// TestTunnelLoopLimitAborts: with a loop limit of one and no backtracking
// the dig gives up cleanly.
func TestTunnelLoopLimitAborts(t *testing.T) {
	m := &mesh{tris: buildTris(gridIDs(3, 3))}

	endpoints := noTri
	count := m.preprocIsolated(&endpoints)

	opts := DefaultOptions()
	opts.Preproc = PreprocIsolated
	opts.LoopLimit = 1
	opts.BacktrackAfterLoopLimit = false
	opts.MaxCount = rectifyMaxCount(opts.MaxCount, len(m.tris))

	got := m.tunnelStrips(&endpoints, count, opts)
	require.LessOrEqual(t, got, count)

	for i := range m.tris {
		require.False(t, m.tris[i].isVisited(), "triangle %d still marked visited", i)
	}
}

// TestPreprocIsolated flags every triangle and links nothing.
func TestPreprocIsolated(t *testing.T) {
	m := &mesh{tris: buildTris(gridIDs(2, 2))}

	endpoints := noTri
	count := m.preprocIsolated(&endpoints)
	require.Equal(t, len(m.tris), count)

	listed := 0
	for it := endpoints; it != noTri; it = m.tris[it].next {
		listed++
	}
	require.Equal(t, len(m.tris), listed)

	for i := range m.tris {
		require.True(t, m.tris[i].isEndpoint())
		require.True(t, m.tris[i].isIsolated())
	}
}

// TestPreprocPairs: every strip has one or two triangles, paired strips
// carry one mutual strong edge.
func TestPreprocPairs(t *testing.T) {
	m := &mesh{tris: buildTris(gridIDs(3, 2))}

	endpoints := noTri
	count := m.preprocPairs(&endpoints)

	singles, paired := 0, 0

	for i := range m.tris {
		tr := &m.tris[i]
		require.True(t, tr.isStripped())
		require.True(t, tr.isEndpoint())

		links := 0
		for slot := 0; slot < 3; slot++ {
			if tr.isLinked(slot) {
				links++

				// Strong edges are symmetric.
				nb := tr.nb[slot]
				require.NotEqual(t, noTri, nb)
				require.True(t, m.tris[nb].isLinked(int(tr.back[slot])))
			}
		}

		require.LessOrEqual(t, links, 1)

		if links == 0 {
			singles++
		} else {
			paired++
		}
	}

	require.Equal(t, count, singles+paired/2)
}

// TestPreprocStripifyEndpointInvariant: after the stripify preprocess,
// endpoints carry at most one strong edge and interior triangles exactly
// two.
func TestPreprocStripifyEndpointInvariant(t *testing.T) {
	m := &mesh{tris: buildTris(gridIDs(4, 3))}

	endpoints := noTri
	count := m.preprocStripify(&endpoints)
	require.Greater(t, count, 0)

	for i := range m.tris {
		tr := &m.tris[i]

		links := 0
		for slot := 0; slot < 3; slot++ {
			if tr.isLinked(slot) {
				links++
			}
		}

		if tr.isEndpoint() {
			require.LessOrEqual(t, links, 1, "endpoint %d with %d strong edges", i, links)
		} else {
			require.Equal(t, 2, links, "interior triangle %d with %d strong edges", i, links)
		}
	}
}

// TestTunnelMonotonic: tunneling never leaves more strips than the
// preprocessor produced, whatever the preprocessor.
func TestTunnelMonotonic(t *testing.T) {
	for _, preproc := range []PreprocAlgorithm{PreprocIsolated, PreprocPairs, PreprocStripify} {
		m := &mesh{tris: buildTris(gridIDs(4, 4))}

		endpoints := noTri

		var before int
		switch preproc {
		case PreprocIsolated:
			before = m.preprocIsolated(&endpoints)
		case PreprocPairs:
			before = m.preprocPairs(&endpoints)
		case PreprocStripify:
			before = m.preprocStripify(&endpoints)
		}

		opts := DefaultOptions()
		opts.Preproc = preproc
		opts.MaxCount = rectifyMaxCount(opts.MaxCount, len(m.tris))

		after := m.tunnelStrips(&endpoints, before, opts)
		require.LessOrEqual(t, after, before, "preproc %d", preproc)
	}
}
