// Package connblock marks the board points that act as connection blockers
// (pass P1 of the scoring pipeline).
//
// What:
//
//   - Six fixed local patterns, each tried under eight orientations and for
//     both colors, looking for a single empty "@" point surrounded by a
//     specific arrangement of living stones and empty/dead-opponent points.
//   - Any point matched by any pattern orientation becomes a connection
//     blocker for that color: a later reachability flood (package reach)
//     stops one step after entering it instead of spreading through it.
//
// Why:
//
//   - Go's scoring disputes hinge on "which empty points does each living
//     group actually border", and a handful of small stone shapes (bent
//     four corners, diagonal ladders...) let a flood spill further than the
//     group truly secures. Blocking those specific points is cheaper and
//     more precise than a general-purpose tactical reading.
//
// Complexity:
//
//   - Mark: O(Height*Width) per orientation per pattern per color, i.e.
//     O(Height*Width) overall since the pattern table is a fixed constant.
package connblock
