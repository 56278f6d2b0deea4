// Package strip - the public entry point.
package strip

// Build converts a flat index list (three ids per triangle) into a set of
// triangle strips covering exactly the non-degenerate input triangles.
//
// Fewer than three ids yield an empty result. A length not divisible by 3
// is rejected with ErrIDCount. The returned strips own freshly allocated id
// buffers; the input slice is never retained.
//
// Complexity: O(n) without tunneling; tunneling adds a bounded search per
// endpoint governed by Options.MaxCount and Options.LoopLimit.
func Build(ids []ID, opts Options) ([]Strip, error) {
	// 1. Validate the options.
	if err := opts.validate(); err != nil {
		return nil, err
	}

	// 2. Trivial inputs produce no strips.
	if len(ids) < 3 {
		return []Strip{}, nil
	}

	if len(ids)%3 != 0 {
		return nil, ErrIDCount
	}

	// 3. Build the triangle arena.
	m := &mesh{tris: buildTris(ids)}
	if len(m.tris) == 0 {
		return []Strip{}, nil
	}

	// 4. Stripify-only mode.
	if !opts.UseTunneling {
		return m.simpleStrips(opts.PreserveOrientation), nil
	}

	// 5. Tunneling. Rectify the depth: it cannot exceed the triangle count
	// or the stack index type, and odd values are useless because every
	// tunnel has even length.
	opts.MaxCount = rectifyMaxCount(opts.MaxCount, len(m.tris))

	endpoints := noTri
	var count int

	switch opts.Preproc {
	case PreprocIsolated:
		count = m.preprocIsolated(&endpoints)
	case PreprocPairs:
		count = m.preprocPairs(&endpoints)
	case PreprocStripify:
		count = m.preprocStripify(&endpoints)
	default:
		panic("strip: preprocessing algorithm slipped through validation")
	}

	return m.stripsFromEndpoints(&endpoints, opts, count), nil
}

// rectifyMaxCount clamps the tunnel depth to [2, min(tris, MaxTunnelDepth)]
// and rounds it down to an even value.
func rectifyMaxCount(maxCount, tris int) int {
	if maxCount > tris {
		maxCount = tris
	}

	if maxCount > MaxTunnelDepth {
		maxCount = MaxTunnelDepth
	}

	maxCount = (maxCount / 2) * 2
	if maxCount < 2 {
		maxCount = 2
	}

	return maxCount
}
