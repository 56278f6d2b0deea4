// Package strip - tunneling preprocessors.
//
// Each preprocessor lays an initial strip cover into the graph: it sets the
// strong-edge bits that mark strip spines, flags the strip ends and threads
// them onto the endpoint list. The tunneler then works purely on that
// colouring; ids are only materialized later by the collector.
package strip

// preprocIsolated makes every triangle a one-triangle strip.
func (m *mesh) preprocIsolated(endpoints *int32) int {
	for i := range m.tris {
		m.tris[i].setEndpoint()
		m.prepend(int32(i), endpoints)
	}

	return len(m.tris)
}

// preprocPairs greedily pairs each triangle with one neighbour, preferring
// triangles with few unstripped neighbours.
func (m *mesh) preprocPairs(endpoints *int32) int {
	buckets := [4]int32{noTri, noTri, noTri, noTri}
	m.orderTris(&buckets)

	count := 0

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

		m.delineatePair(first, &buckets, endpoints)
		count++
	}

	return count
}

// preprocStripify grows full greedy strips, mirroring the stripify pass but
// recording only the colouring instead of emitting ids.
func (m *mesh) preprocStripify(endpoints *int32) int {
	buckets := [4]int32{noTri, noTri, noTri, noTri}
	m.orderTris(&buckets)

	count := 0

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

		m.delineateStrip(first, &buckets, endpoints)
		count++
	}

	return count
}

// delineatePair pairs first with its lowest-degree unstripped neighbour.
// Both become endpoints; a lone triangle stays an isolated endpoint.
func (m *mesh) delineatePair(first int32, buckets *[4]int32, endpoints *int32) {
	m.setStrippedAndPropagate(first, buckets)
	m.tris[first].setEndpoint()
	m.prepend(first, endpoints)

	second, _, slotFirstToSecond := m.selectNextCoreTri(first, buckets)
	if second == noTri {
		return
	}

	m.tris[second].setEndpoint()
	m.prepend(second, endpoints)

	slotSecondToFirst := int(m.tris[first].back[slotFirstToSecond])

	m.tris[first].linkTo(slotFirstToSecond)
	m.tris[second].linkTo(slotSecondToFirst)
}

// delineateStrip marks one full greedy strip into the graph: strong edges
// along the spine, endpoint flags at both ends.
func (m *mesh) delineateStrip(first int32, buckets *[4]int32, endpoints *int32) {
	m.setStrippedAndPropagate(first, buckets)

	second, firstEdge, slotFirstToSecond := m.selectNextCoreTri(first, buckets)
	if second == noTri {
		// A full one-triangle strip: endpoint with multiplicity 2, but it
		// is referenced only once.
		m.tris[first].setEndpoint()
		m.prepend(first, endpoints)

		return
	}

	slotSecondToFirst := int(m.tris[first].back[slotFirstToSecond])

	m.tris[first].linkTo(slotFirstToSecond)
	m.tris[second].linkTo(slotSecondToFirst)

	third, secondEdge, slotSecondToThird := m.selectNextCoreTri(second, buckets)
	if third == noTri {
		// first and second form a complete strip.
		m.tris[first].setEndpoint()
		m.prepend(first, endpoints)

		m.tris[second].setEndpoint()
		m.prepend(second, endpoints)

		return
	}

	slotThirdToSecond := int(m.tris[second].back[slotSecondToThird])

	m.tris[second].linkTo(slotSecondToThird)
	m.tris[third].linkTo(slotThirdToSecond)

	// Entrance vertices viewed from the second core triangle; the middle
	// one is only needed later by the collector.
	entrances := coreEntranceIDs(firstEdge, secondEdge)

	// Grow in both directions and flag the far ends.
	firstEnd := m.delineateGrow(first, slotFirstToSecond, entrances[0], buckets)
	secondEnd := m.delineateGrow(third, slotThirdToSecond, entrances[2], buckets)

	m.tris[firstEnd].setEndpoint()
	m.prepend(firstEnd, endpoints)

	m.tris[secondEnd].setEndpoint()
	m.prepend(secondEnd, endpoints)
}

// delineateGrow extends the colouring from t away from idxToPrev and
// returns the end triangle of that direction. t is expected to be stripped
// and linked back already.
func (m *mesh) delineateGrow(t int32, idxToPrev int, entrance ID, buckets *[4]int32) int32 {
	for {
		cur := &m.tris[t]

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

				if bestDegree == degree && bestNear {
					break
				}
			}

			best = slot
			bestDegree = degree
			bestNear = cur.v[slot] == entrance || cur.v[(slot+1)%3] == entrance
		}

		if best == slotNone {
			return t
		}

		entrance = cur.v[(idxToPrev+2)%3]

		next := cur.nb[best]
		prevSlot := best
		idxToPrev = int(cur.back[best])

		// Strong edge in both directions.
		cur.linkTo(prevSlot)
		m.tris[next].linkTo(idxToPrev)

		t = next
		m.setStrippedAndPropagate(t, buckets)
	}
}
