// Package strip - the greedy stripify pass.
//
// Strips are seeded at triangles with the lowest unstripped-neighbour count
// and grown in both directions. At every step the candidate with the lower
// count wins; ties prefer the near neighbour because a far transition costs
// one swap vertex.
package strip

// simpleStrips runs stripify over the whole arena and emits the finished
// strips directly. Used by Build when tunneling is off.
func (m *mesh) simpleStrips(preserveOrientation bool) []Strip {
	buckets := [4]int32{noTri, noTri, noTri, noTri}
	m.orderTris(&buckets)

	strips := make([]Strip, 0, len(m.tris)/4+1)

	// One scratch id buffer reused across strips.
	scratch := make([]ID, 0, max(2+len(m.tris), 32))

	for {
		first := noTri
		for i := 0; i < 4; i++ {
			if buckets[i] != noTri {
				first = buckets[i]
				break
			}
		}

		if first == noTri {
			break
		}

		strips = append(strips, m.buildStrip(first, preserveOrientation, &buckets, &scratch))
	}

	return strips
}

// buildStrip builds a single strip originating from the given first core
// triangle, advancing it in both directions.
func (m *mesh) buildStrip(first int32, preserveOrientation bool, buckets *[4]int32, scratch *[]ID) Strip {
	// 1. Mark the start triangle as stripped.
	m.setStrippedAndPropagate(first, buckets)

	// 2. Pick the second core triangle and the edge shared with it.
	second, firstEdge, slotFirstToSecond := m.selectNextCoreTri(first, buckets)
	if second == noTri {
		// A lone triangle becomes a three-id strip.
		ft := &m.tris[first]

		return Strip{IDs: []ID{ft.v[0], ft.v[1], ft.v[2]}}
	}

	// 3. Pick the third core triangle from the second one.
	third, secondEdge, slotSecondToThird := m.selectNextCoreTri(second, buckets)
	if third == noTri {
		// Two triangles: emit the first in winding order plus the far
		// vertex of the second.
		ft := &m.tris[first]
		slotSecondToFirst := int(ft.back[slotFirstToSecond])

		return Strip{IDs: []ID{
			ft.v[(slotFirstToSecond+2)%3],
			ft.v[slotFirstToSecond],
			ft.v[(slotFirstToSecond+1)%3],
			m.tris[second].v[(slotSecondToFirst+2)%3],
		}}
	}

	// 4. Entrance vertices of the three core triangles, viewed from the
	// second one.
	entrances := coreEntranceIDs(firstEdge, secondEdge)

	// The first core triangle is oriented correctly iff the backward leg
	// will emit exactly one id in front of it.
	oriented := m.tris[first].v[slotFirstToSecond] == entrances[0]

	// 5. Grow backward from the first core triangle.
	m.growStrip(first, slotFirstToSecond, entrances[1], entrances[0], preserveOrientation, oriented, buckets, scratch)

	prefix := len(*scratch)

	// 6. The core entrances themselves.
	*scratch = append(*scratch, entrances[0], entrances[1], entrances[2])

	// 7. Grow forward from the third core triangle.
	slotThirdToSecond := int(m.tris[second].back[slotSecondToThird])
	m.growStrip(third, slotThirdToSecond, entrances[1], entrances[2], false, false, buckets, scratch)

	// 8. Assemble: the backward leg was produced in reverse order.
	ids := make([]ID, len(*scratch))
	for i := 0; i < prefix; i++ {
		ids[i] = (*scratch)[prefix-1-i]
	}
	copy(ids[prefix:], (*scratch)[prefix:])

	*scratch = (*scratch)[:0]

	return Strip{IDs: ids}
}

// growStrip extends a strip from t (already stripped) away from the slot
// idxToPrev. It always pushes at least one id.
//
// The oriented flag tracks the winding parity of the whole strip while the
// backward leg advances: a near step toggles it (one id appended), a far
// step does not (two triangles appended). When the leg ends misoriented and
// preserveOrientation is set, the last id is repeated once.
func (m *mesh) growStrip(t int32, idxToPrev int, prevEntrance, entrance ID, preserveOrientation, oriented bool, buckets *[4]int32, scratch *[]ID) {
	for {
		cur := &m.tris[t]

		// 1. Look for the best neighbour among the two non-back slots.
		best := slotNone
		bestDegree := 0
		bestNear := false

		for i := 0; i < 2; i++ {
			slot := remainingSlot(idxToPrev, i)

			nb := cur.nb[slot]
			if nb == noTri || m.tris[nb].isStripped() {
				continue
			}

			degree := int(m.tris[nb].degree)

			if best != slotNone {
				if bestDegree < degree {
					break
				}

				// On a tie, keep the near candidate to avoid a swap.
				if bestDegree == degree && bestNear {
					break
				}
			}

			best = slot
			bestDegree = degree
			bestNear = cur.v[slot] == entrance || cur.v[(slot+1)%3] == entrance
		}

		// 2. Account for the transition before pushing the entrance.
		if best != slotNone {
			if bestNear {
				prevEntrance = entrance
				oriented = !oriented
			} else {
				// Far: repeat the previous entrance to induce the swap.
				// The previous entrance stays what it was, and parity is
				// unchanged because two triangles get appended.
				*scratch = append(*scratch, prevEntrance)
			}
		}

		// 3. The next entrance sits opposite the back slot.
		entrance = cur.v[(idxToPrev+2)%3]
		*scratch = append(*scratch, entrance)

		// 4. No candidate: the strip ends here.
		if best == slotNone {
			if preserveOrientation && !oriented {
				*scratch = append(*scratch, entrance)
			}

			return
		}

		// 5. Advance.
		next := cur.nb[best]
		idxToPrev = int(cur.back[best])
		t = next

		m.setStrippedAndPropagate(t, buckets)
	}
}
