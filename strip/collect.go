// Package strip - strip collection.
//
// After tunneling, strips exist only as strong-edge colouring in the graph.
// The collector starts at each surviving endpoint, follows the spine and
// emits the final id sequence, inserting swap vertices on far transitions
// and one leading duplicate when orientation must be preserved.
package strip

// traverseStrip moves from *t to the next triangle of its strip, away from
// the slot *idxToPrev. Returns false when *t is an endpoint; otherwise
// updates both in-out values.
func (m *mesh) traverseStrip(t *int32, idxToPrev *int) bool {
	cur := &m.tris[*t]

	if cur.isEndpoint() {
		return false
	}

	for i := 0; i < 2; i++ {
		slot := remainingSlot(*idxToPrev, i)

		if !cur.isLinked(slot) {
			continue
		}

		*t = cur.nb[slot]
		*idxToPrev = int(cur.back[slot])

		return true
	}

	panic("strip: stranded at an interior triangle without strong edges")
}

// collectStrip emits the strip starting at the endpoint first and returns
// it together with the strip's far endpoint (noTri for a one-triangle
// strip, whose endpoint has multiplicity 2).
func (m *mesh) collectStrip(first int32, preserveOrientation bool) (Strip, int32) {
	ft := &m.tris[first]

	if !ft.isEndpoint() {
		panic("strip: collection must start at an endpoint")
	}

	// 1. Find the single strong slot of the head.
	slotFirstToSecond := slotNone
	idxToPrev := 0
	var firstEdge [2]ID

	for i := 0; i < 3; i++ {
		if !ft.isLinked(i) {
			continue
		}

		slotFirstToSecond = i
		idxToPrev = int(ft.back[i])

		firstEdge[0] = ft.v[i]
		firstEdge[1] = ft.v[(i+1)%3]

		break
	}

	// 2. No strong edge at all: a one-triangle strip.
	if slotFirstToSecond == slotNone {
		return Strip{IDs: []ID{ft.v[0], ft.v[1], ft.v[2]}}, noTri
	}

	second := ft.nb[slotFirstToSecond]
	firstVertex := ft.v[(slotFirstToSecond+2)%3]

	// 3. The far end right next door: a two-triangle strip.
	if m.tris[second].isEndpoint() {
		return Strip{IDs: []ID{
			firstVertex,
			ft.v[slotFirstToSecond],
			ft.v[(slotFirstToSecond+1)%3],
			m.tris[second].v[(idxToPrev+2)%3],
		}}, second
	}

	// 4. Find the third triangle via the second's other strong slot.
	third := noTri
	var secondEdge [2]ID

	st := &m.tris[second]

	for i := 0; i < 2; i++ {
		slot := remainingSlot(idxToPrev, i)

		if !st.isLinked(slot) {
			continue
		}

		third = st.nb[slot]

		secondEdge[0] = st.v[slot]
		secondEdge[1] = st.v[(slot+1)%3]

		idxToPrev = int(st.back[slot])

		break
	}

	if third == noTri {
		panic("strip: interior triangle with a single strong edge")
	}

	entrances := coreEntranceIDs(firstEdge, secondEdge)

	ids := make([]ID, 0, 32)
	ids = append(ids, firstVertex)

	// 5. Orientation fix: one leading duplicate rotates the winding.
	if preserveOrientation && ft.v[slotFirstToSecond] != entrances[0] {
		ids = append(ids, firstVertex)
	}

	ids = append(ids, entrances[0], entrances[1], entrances[2])

	// 6. Walk the spine to the far endpoint.
	last := m.collectLoop(third, idxToPrev, entrances[1], entrances[2], &ids)

	return Strip{IDs: ids}, last
}

// collectLoop follows strong edges from t until an endpoint is reached,
// emitting one entrance vertex per triangle and a swap vertex on every far
// transition. Returns the far endpoint.
func (m *mesh) collectLoop(t int32, idxToPrev int, prevEntrance, entrance ID, ids *[]ID) int32 {
	for {
		// The id completing the current triangle sits opposite the back
		// slot; it is pushed even at the endpoint.
		next := m.tris[t].v[(idxToPrev+2)%3]

		more := m.traverseStrip(&t, &idxToPrev)

		if more {
			cur := &m.tris[t]

			// Near transition: the shared edge contains the current
			// entrance, no swap needed. Far: repeat the previous entrance.
			if cur.v[idxToPrev] == entrance || cur.v[(idxToPrev+1)%3] == entrance {
				prevEntrance = entrance
			} else {
				*ids = append(*ids, prevEntrance)
			}
		}

		entrance = next
		*ids = append(*ids, entrance)

		if !more {
			return t
		}
	}
}
