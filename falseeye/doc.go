// Package falseeye marks false eye points within potential eyes (pass
// P7), run twice by the scoring synthesis in package scorer: once with
// every eye's value still zero to get the life-and-death false eye
// points, and again after package eye has estimated real eye values to
// get the (generally smaller) set of unscorable false eye points.
//
// What:
//
//   - A point within a potential eye is false for a given macrochain
//     border if that macrochain cannot reach any other border of the
//     same eye — nor a different eye with positive eye value — without
//     routing back through the point itself. Reaching "through" other
//     eyes and other macrochains along the way is allowed.
//   - Mark walks that reachability search for every (eye, macrochain)
//     border pair and records which points fail it.
//
// Why:
//
//   - Go's classic false-eye shapes (the "bent four" corner, a
//     diagonally-cut eye) look like an eye locally but don't actually
//     stop a determined opponent, because sealing them off costs the
//     defender a move elsewhere. This search is how the reference engine
//     tells those apart from real eyes without hand-coding every shape.
//
// Complexity:
//
//   - Mark: bounded by the number of (eye, macrochain, border point)
//     triples times the cost of one recursive macrochain/eye search,
//     which in the worst case touches every macrochain and eye once —
//     matching the reference engine's own cost profile, not better.
package falseeye
