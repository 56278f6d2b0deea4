package stats

import "github.com/katalvlaran/tristrip/strip"

// Stats aggregates the measurable properties of a strip set.
type Stats struct {
	// Strips is the number of strips.
	Strips int

	// ValidTris is the number of non-degenerate triangles the strips
	// encode.
	ValidTris int

	// Swaps is the number of swap-induced degenerate triangles.
	Swaps int

	// VertexCost[s][p] is the total vertex cost when a swap costs s
	// vertices (0 or 1) and a primitive restart costs p vertices (0, 1
	// or 2):
	//
	//	+-----+-----+-----+-----+
	//	|     | PR0 | PR1 | PR2 |
	//	+=====+=====+=====+=====+
	//	| SW0 |     |     |     |
	//	| SW1 |     |     |     |
	//	+-----+-----+-----+-----+
	VertexCost [2][3]int
}

// Calculate computes the statistics for a strip collection.
//
// Every window of three consecutive ids counts once: windows with two equal
// ids are swaps, all others valid triangles. The base vertex cost is two
// ids of overhead per strip plus one per valid triangle; restarts apply
// between strips, so strips−1 times.
func Calculate(strips []strip.Strip) Stats {
	var s Stats
	s.Strips = len(strips)

	for i := range strips {
		ids := strips[i].IDs

		for j := 0; j+2 < len(ids); j++ {
			a, b, c := ids[j], ids[j+1], ids[j+2]

			if a == b || b == c || c == a {
				s.Swaps++
			} else {
				s.ValidTris++
			}
		}
	}

	base := 2*s.Strips + s.ValidTris

	restarts := 0
	if s.Strips > 0 {
		restarts = s.Strips - 1
	}

	for swapCost := 0; swapCost <= 1; swapCost++ {
		for restartCost := 0; restartCost <= 2; restartCost++ {
			s.VertexCost[swapCost][restartCost] = base + s.Swaps*swapCost + restarts*restartCost
		}
	}

	return s
}
