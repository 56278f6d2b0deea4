// Package verify checks a set of triangle strips against the index list
// they were built from: the strips must cover exactly the non-degenerate
// input triangles, as an unordered multiset.
//
// What:
//
//   - New(ids) records the input triangle multiset (degenerates dropped,
//     exactly as the stripper drops them).
//   - Verify(strips) reads every non-degenerate triangle back out of the
//     strips and reports unknown, superfluous and missing triangles.
//   - Report.OK() is true iff the cover is exact.
//
// Why:
//
//   - Testing stripper configurations against the cover guarantee.
//   - Validating strip assets from external tools before use.
//
// The verifier is robust against duplicated input triangles: multiplicities
// are tracked per unordered vertex triple.
//
// Complexity: New O(n), Verify O(total ids), Memory: O(distinct triangles).
//
// Errors:
//
//   - ErrIDCount: index count not divisible by 3.
package verify
