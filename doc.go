// Package tristrip turns indexed triangle meshes into triangle strips.
//
// 🚀 What is tristrip?
//
//	A small, deterministic library that converts a flat vertex-index list
//	into a compact set of GPU-friendly triangle strips:
//
//	  • Greedy stripification with lowest-degree seeding and near/far edges
//	  • Optional tunneling: alternating-path search that merges strips
//	  • Orientation preservation via a single leading duplicate vertex
//
// ✨ Why choose tristrip?
//
//   - Deterministic          — same input and options, same strips, always
//   - Allocation-conscious   — one contiguous triangle arena, reused scratch
//   - Robust                 — degenerate triangles dropped, non-manifold
//     edges paired in insertion order
//   - Pure Go                — no cgo
//
// Everything is organized under five subpackages:
//
//	strip/     — the engine: Build(ids, opts) and its Options
//	stats/     — strip-set statistics and vertex cost models
//	verify/    — checks a strip set against the original triangle multiset
//	meshbuild/ — deterministic test meshes (grids, fans, soups, …)
//	cmd/       — the tristrip command-line tool
//
// Quick ASCII example:
//
//	    0───1        the two triangles (0,1,2) and (1,3,2)
//	    │ ╱ │        collapse into the single strip 0 1 2 3
//	    2───3
//
// Dive into README.md for full examples.
//
//	go get github.com/katalvlaran/tristrip/strip
package tristrip
