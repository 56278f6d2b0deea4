package verify

import (
	"errors"
	"sort"

	"github.com/katalvlaran/tristrip/strip"
)

// ErrIDCount indicates the index list length is not divisible by 3.
var ErrIDCount = errors.New("verify: number of vertex ids must be divisible by 3")

// triKey is an unordered triangle: the three vertex ids sorted ascending.
type triKey [3]strip.ID

// makeTriKey sorts three ids into a triKey.
func makeTriKey(a, b, c strip.ID) triKey {
	if b < a {
		a, b = b, a
	}
	if c < b {
		b, c = c, b
	}
	if b < a {
		a, b = b, a
	}

	return triKey{a, b, c}
}

// occurrence tracks one distinct input triangle: its expected multiplicity
// and its slot in the per-Verify seen counters.
type occurrence struct {
	multiplicity int
	index        int
}

// Verifier holds the triangle multiset of one index list. It is immutable
// after New and may verify any number of strip sets.
type Verifier struct {
	validTris int
	occ       map[triKey]occurrence
}

// New builds a Verifier from an index list, dropping degenerate triples the
// same way the stripper does.
func New(ids []strip.ID) (*Verifier, error) {
	if len(ids)%3 != 0 {
		return nil, ErrIDCount
	}

	v := &Verifier{occ: make(map[triKey]occurrence, len(ids)/3)}

	for i := 0; i+2 < len(ids); i += 3 {
		a, b, c := ids[i], ids[i+1], ids[i+2]
		if a == b || b == c || c == a {
			continue
		}

		key := makeTriKey(a, b, c)

		if o, ok := v.occ[key]; ok {
			o.multiplicity++
			v.occ[key] = o
		} else {
			v.occ[key] = occurrence{multiplicity: 1, index: len(v.occ)}
		}

		v.validTris++
	}

	return v, nil
}

// Mismatch describes one triangle whose strip multiplicity deviates from
// the input multiset.
type Mismatch struct {
	// Tri holds the vertex ids, sorted ascending.
	Tri [3]strip.ID

	// Want is the multiplicity in the input, Got the one seen in the
	// strips.
	Want, Got int
}

// Report is the outcome of one Verify call.
type Report struct {
	// Unknown lists triangles found in the strips but absent from the
	// input (Want is 0).
	Unknown []Mismatch

	// Superfluous lists input triangles that appear too often in the
	// strips.
	Superfluous []Mismatch

	// Missing lists input triangles that appear too rarely (possibly not
	// at all) in the strips.
	Missing []Mismatch
}

// OK reports whether the strip set covers the input exactly.
func (r Report) OK() bool {
	return len(r.Unknown) == 0 && len(r.Superfluous) == 0 && len(r.Missing) == 0
}

// Verify compares a strip set against the recorded input multiset.
// Degenerate strip triangles are swaps and ignored. The report slices are
// sorted by vertex triple, so the outcome is deterministic.
func (v *Verifier) Verify(strips []strip.Strip) Report {
	var r Report

	seen := make([]int, len(v.occ))

	// 1. Read every triangle back out of the strips.
	for i := range strips {
		ids := strips[i].IDs

		for j := 0; j+2 < len(ids); j++ {
			a, b, c := ids[j], ids[j+1], ids[j+2]
			if a == b || b == c || c == a {
				continue
			}

			key := makeTriKey(a, b, c)

			o, ok := v.occ[key]
			if !ok {
				r.Unknown = append(r.Unknown, Mismatch{Tri: key, Want: 0, Got: 1})
				continue
			}

			seen[o.index]++

			if seen[o.index] == o.multiplicity+1 {
				// Report the overflow once, with the final count fixed
				// up below.
				r.Superfluous = append(r.Superfluous, Mismatch{Tri: key, Want: o.multiplicity})
			}
		}
	}

	// 2. Fix up the Got counters and find missing triangles.
	for key, o := range v.occ {
		switch {
		case seen[o.index] < o.multiplicity:
			r.Missing = append(r.Missing, Mismatch{Tri: key, Want: o.multiplicity, Got: seen[o.index]})
		case seen[o.index] > o.multiplicity:
			for i := range r.Superfluous {
				if r.Superfluous[i].Tri == [3]strip.ID(key) {
					r.Superfluous[i].Got = seen[o.index]
					break
				}
			}
		}
	}

	// 3. Deterministic report order.
	sortMismatches(r.Unknown)
	sortMismatches(r.Superfluous)
	sortMismatches(r.Missing)

	return r
}

func sortMismatches(ms []Mismatch) {
	sort.Slice(ms, func(i, j int) bool {
		a, b := ms[i].Tri, ms[j].Tri
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}

		return a[2] < b[2]
	})
}
