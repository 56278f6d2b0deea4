// Package strip converts indexed triangle meshes into triangle strips,
// optimizing for few strips, few swap-induced degenerate triangles, and an
// optional guarantee that face orientation survives.
//
// What:
//
//   - Build(ids, opts) turns a flat index list into []Strip.
//   - A triangle adjacency graph is stitched even across non-manifold 3-
//     and 4-fold edges (coincident edges pair in insertion order).
//   - Stripify grows strips greedily, seeding at low-degree triangles and
//     preferring near transitions to avoid swaps.
//   - Tunneling searches alternating weak/strong paths between strip
//     endpoints with a depth-limited, backtracking DFS and circle
//     detection; each cemented tunnel merges two strips into one.
//
// Why:
//
//   - Rendering pipelines: fewer vertices pushed per triangle.
//   - Asset bakers: deterministic, reproducible strip sets.
//
// Complexity:
//
//   - Building + stripify: O(n) expected over n triangles.
//   - Tunneling: bounded per endpoint by MaxCount and LoopLimit.
//
// Options:
//
//   - UseTunneling, Preproc: stripify-only vs preprocess-then-tunnel.
//   - PreserveOrientation: at most one leading duplicate vertex per strip.
//   - MaxCount, Incremental, LoopLimit, BacktrackAfterLoopLimit, DestCount:
//     tunnel search governance.
//
// Errors:
//
//   - ErrIDCount: index count not divisible by 3.
//   - ErrPreprocAlgorithm: unknown preprocessing algorithm.
//   - ErrNegativeOption: negative MaxCount, LoopLimit or DestCount.
//
// The output contract: every non-degenerate input triangle appears in the
// strips with its input multiplicity, every degenerate output triangle is a
// swap (two equal consecutive ids), and each strip carries at least three
// ids. Use the verify package to check a cover, stats to measure it.
package strip
