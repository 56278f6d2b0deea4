// Package stats measures a set of triangle strips: how many strips, how
// many real triangles they encode, how many swap degenerates were paid for
// winding and far transitions, and what the set costs in vertices under
// different hardware cost models.
//
// What:
//
//   - Calculate(strips) walks every strip window and classifies each
//     triangle as valid or swap.
//   - VertexCost is a 2×3 table: swaps free or one vertex each, primitive
//     restarts free, one or two vertices each.
//
// Why:
//
//   - Comparing stripper configurations (tunnel depth, preprocessors).
//   - Estimating GPU submission cost before baking assets.
//
// Complexity: O(total ids), Memory: O(1).
package stats
