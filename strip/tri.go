// Package strip - the triangle arena.
//
// Triangles live in one contiguous slice; a "reference to a triangle" is an
// int32 index into it and noTri marks absence. All per-triangle state is
// packed into a few bytes so large meshes stay cache-friendly.
package strip

// noTri is the absent-triangle sentinel for neighbour slots and list links.
const noTri = int32(-1)

// slotNone denotes "no neighbour slot"; valid slots are 0, 1 and 2.
const slotNone = 3

// remainingSlot enumerates the two slots of a triangle other than except
// (i = 0 and i = 1).
func remainingSlot(except, i int) int {
	return (except + 1 + i) % 3
}

// Triangle flags.
const (
	// flagStripped: the triangle has been absorbed into some strip.
	flagStripped uint8 = 1 << iota
	// flagEndpoint: the triangle currently ends a strip.
	flagEndpoint
	// flagVisited: the triangle is on the active tunnel stack.
	flagVisited
)

// tstateDepleted is the sentinel bottom of the inline tunnel-state stack.
const tstateDepleted = uint8(3)

// tri is a single mesh triangle.
//
// Neighbour slot i corresponds to the edge between vertices i and (i+1)%3:
//
//	       0
//	      / \
//	   0 /   \ 2
//	    /     \
//	   1 ----- 2
//	       1
//
// The prev/next links serve two disjoint phases: first the four adjacency
// buckets (triangles grouped by unstripped-neighbour count), later the
// endpoint list used by tunneling and collection. A triangle is never in
// both at once.
type tri struct {
	// nb holds arena indices of the adjacent triangles, noTri if absent.
	nb [3]int32

	// prev, next: intrusive doubly-linked list membership.
	prev, next int32

	// v holds the three vertex ids in input winding order.
	v [3]ID

	// tunnelIndex is the position on the tunnel stack; valid only while
	// flagVisited is set.
	tunnelIndex uint16

	// back[i] is our slot index as seen from nb[i]. Stays 0 for absent
	// neighbours.
	back [3]uint8

	flags uint8

	// link packs the three strong-edge bits (one per slot) in the low
	// half and a one-deep shadow copy in bits 3..5:
	//
	//	-------------------------------------------------
	//	|  ?  |  ?  | sh2 | sh1 | sh0 |  l2 |  l1 |  l0 |
	//	-------------------------------------------------
	link uint8

	// tstate is an inline stack of up to three 2-bit candidate successor
	// slots above the sentinel:
	//
	//	-------------------------------------------------
	//	|  sentinel |  slot 2   |  slot 1   |  slot 0   |
	//	-------------------------------------------------
	tstate uint8

	// degree is the number of adjacent triangles not yet stripped.
	degree uint8
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Flags
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

func (t *tri) isStripped() bool { return t.flags&flagStripped != 0 }
func (t *tri) setStripped()     { t.flags |= flagStripped }

func (t *tri) isEndpoint() bool { return t.flags&flagEndpoint != 0 }
func (t *tri) setEndpoint()     { t.flags |= flagEndpoint }
func (t *tri) setNonEndpoint()  { t.flags &^= flagEndpoint }

func (t *tri) isVisited() bool { return t.flags&flagVisited != 0 }

func (t *tri) setVisited(tunnelIndex int) {
	t.flags |= flagVisited
	t.tunnelIndex = uint16(tunnelIndex)
}

func (t *tri) setUnvisited() { t.flags &^= flagVisited }

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Link state (strong edges)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// isLinked reports whether the edge at slot is strong, i.e. internal to the
// strip the triangle belongs to.
func (t *tri) isLinked(slot int) bool {
	return t.link&(1<<slot) != 0
}

// isIsolated reports whether the triangle has no strong edges at all. Such
// a triangle forms a one-triangle strip and is, by definition, an endpoint;
// it stays one even after being tunneled once.
func (t *tri) isIsolated() bool {
	return t.link&7 == 0
}

func (t *tri) linkTo(slot int)     { t.link |= 1 << slot }
func (t *tri) unlinkFrom(slot int) { t.link &^= 1 << slot }

// saveLink copies the strong-edge bits into the shadow half.
func (t *tri) saveLink() {
	t.link = (t.link << 3) | (t.link & 7)
}

// restoreLink brings the shadow half back.
func (t *tri) restoreLink() {
	t.link >>= 3
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Tunnel state (candidate successor slots)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

func (t *tri) initTunnelState() { t.tstate = tstateDepleted }

func (t *tri) tunnelDepleted() bool { return t.tstate == tstateDepleted }

// pushTunnelState appends a candidate successor slot. At most three fit
// above the sentinel, one per neighbour slot.
func (t *tri) pushTunnelState(slot int) {
	t.tstate = t.tstate<<2 | uint8(slot)
}

// nextTunnelState pops the current candidate and reports whether another
// one is left.
func (t *tri) nextTunnelState() bool {
	t.tstate >>= 2

	return !t.tunnelDepleted()
}

// tunnelSuccessor returns the currently selected successor slot.
func (t *tri) tunnelSuccessor() int {
	return int(t.tstate & 3)
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Mesh arena and intrusive lists
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// mesh owns the triangle arena for one Build call. All graph mutation runs
// through it; nothing escapes except the finished strips.
type mesh struct {
	tris []tri
}

// prepend pushes t onto the front of the list anchored at *head.
func (m *mesh) prepend(t int32, head *int32) {
	tr := &m.tris[t]
	tr.prev = noTri
	tr.next = *head

	if tr.next != noTri {
		m.tris[tr.next].prev = t
	}

	*head = t
}

// remove unlinks t from the list anchored at *head.
func (m *mesh) remove(t int32, head *int32) {
	tr := &m.tris[t]

	if tr.prev != noTri {
		m.tris[tr.prev].next = tr.next
	} else {
		// t was the list head.
		*head = tr.next
	}

	if tr.next != noTri {
		m.tris[tr.next].prev = tr.prev
	}
}

// orderTris sorts every triangle into the adjacency bucket matching its
// unstripped-neighbour count (0, 1, 2 or 3).
func (m *mesh) orderTris(buckets *[4]int32) {
	for i := range m.tris {
		m.prepend(int32(i), &buckets[m.tris[i].degree])
	}
}

// setStrippedAndPropagate marks t stripped, removes it from its bucket and
// demotes every unstripped neighbour to the bucket one below. Degrees only
// ever decrease here.
func (m *mesh) setStrippedAndPropagate(t int32, buckets *[4]int32) {
	tr := &m.tris[t]
	tr.setStripped()
	m.remove(t, &buckets[tr.degree])

	for i := 0; i < 3; i++ {
		nb := tr.nb[i]
		if nb == noTri || m.tris[nb].isStripped() {
			continue
		}

		ntr := &m.tris[nb]
		m.remove(nb, &buckets[ntr.degree])
		ntr.degree--
		m.prepend(nb, &buckets[ntr.degree])
	}
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Core helpers shared by stripify, preprocessing and collection
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// coreEntranceIDs derives the entrance vertices of the three core triangles
// from the two edges shared between them. The vertex common to both edges
// is the second triangle's entrance; the non-shared vertex of the first
// (resp. second) edge belongs to the first (resp. third) triangle.
func coreEntranceIDs(firstEdge, secondEdge [2]ID) [3]ID {
	switch {
	case firstEdge[0] == secondEdge[0]:
		return [3]ID{firstEdge[1], firstEdge[0], secondEdge[1]}
	case firstEdge[0] == secondEdge[1]:
		return [3]ID{firstEdge[1], firstEdge[0], secondEdge[0]}
	case firstEdge[1] == secondEdge[0]:
		return [3]ID{firstEdge[0], firstEdge[1], secondEdge[1]}
	default:
		if firstEdge[1] != secondEdge[1] {
			panic("strip: core edges share no vertex")
		}

		return [3]ID{firstEdge[0], firstEdge[1], secondEdge[0]}
	}
}

// selectNextCoreTri picks the unstripped neighbour of t with the lowest
// unstripped-neighbour count, marks it stripped and returns it together
// with the shared edge and the slot of t it sits behind. Returns noTri when
// every neighbour is absent or stripped.
func (m *mesh) selectNextCoreTri(t int32, buckets *[4]int32) (next int32, sharedEdge [2]ID, slotFromTri int) {
	tr := &m.tris[t]
	next = noTri

	for i := 0; i < 3; i++ {
		nb := tr.nb[i]
		if nb == noTri || m.tris[nb].isStripped() {
			continue
		}

		if next == noTri || m.tris[nb].degree < m.tris[next].degree {
			next = nb
			slotFromTri = i
		}
	}

	if next != noTri {
		sharedEdge[0] = tr.v[slotFromTri]
		sharedEdge[1] = tr.v[(slotFromTri+1)%3]

		m.setStrippedAndPropagate(next, buckets)
	}

	return next, sharedEdge, slotFromTri
}
