// Package meshbuild generates deterministic triangle index lists for
// tests, benchmarks and examples.
//
// What:
//
//   - Grid(w, h): a regular sheet of w×h cells, two triangles each.
//   - Fan(n): n triangles sharing one center vertex.
//   - Serpentine(n): a perfect n-triangle strip.
//   - Soup(n): n fully disconnected triangles.
//   - NonManifold(k): k triangles all sharing one edge.
//
// Why:
//
//   - Stripper behaviour differs sharply between sheets, fans and soups;
//     having each shape one call away keeps tests readable.
//   - All generators are pure functions of their arguments, so test
//     failures reproduce exactly.
//
// Grid, Fan, Serpentine and Soup meshes are consistently wound, which makes
// them suitable for orientation-preservation checks. NonManifold is not:
// every one of its triangles traverses the shared edge in the same
// direction.
//
// Errors:
//
//   - ErrSize: a non-positive dimension was requested.
package meshbuild
