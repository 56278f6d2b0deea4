// Package strip - triangle arena construction from a flat index list.
package strip

// openEdge is a triangle plus the slot of one of its edges that still waits
// for a partner.
type openEdge struct {
	t    int32
	slot uint8
}

// edgeKey packs an undirected edge into a single map key, smaller id in the
// low half.
func edgeKey(a, b ID) uint64 {
	lower, upper := a, b
	if upper < lower {
		lower, upper = upper, lower
	}

	return uint64(upper)<<32 | uint64(lower)
}

// buildTris converts an index list (length divisible by 3) into the
// triangle arena and stitches neighbour references.
//
// Degenerate triples (two equal ids) are dropped. For every surviving edge
// the open-edge map holds at most one dangling half-edge: on second sight
// the two halves are spliced into a mutual neighbour pair and the key is
// removed again. The removal - rather than an overwrite - lets a third and
// fourth triangle on the same edge pair up independently; further
// incidences keep pairing in insertion order, so with an odd count the last
// one stays unlinked.
//
// Complexity: O(n) expected, Memory: O(n).
func buildTris(ids []ID) []tri {
	tris := make([]tri, 0, len(ids)/3)
	open := make(map[uint64]openEdge, len(ids))

	for i := 0; i+2 < len(ids); i += 3 {
		v0, v1, v2 := ids[i], ids[i+1], ids[i+2]
		if v0 == v1 || v1 == v2 || v2 == v0 {
			continue
		}

		t := int32(len(tris))
		tris = append(tris, tri{
			nb:   [3]int32{noTri, noTri, noTri},
			prev: noTri,
			next: noTri,
			v:    [3]ID{v0, v1, v2},
		})

		keys := [3]uint64{edgeKey(v0, v1), edgeKey(v1, v2), edgeKey(v2, v0)}

		for j := 0; j < 3; j++ {
			other, ok := open[keys[j]]
			if !ok {
				open[keys[j]] = openEdge{t: t, slot: uint8(j)}
				continue
			}

			// Splice the two half-edges into a neighbour pair.
			cur, nb := &tris[t], &tris[other.t]

			cur.nb[j] = other.t
			cur.back[j] = other.slot
			cur.degree++

			nb.nb[other.slot] = t
			nb.back[other.slot] = uint8(j)
			nb.degree++

			delete(open, keys[j])
		}
	}

	return tris
}
