// Package chain decomposes the board into chains (pass P4): maximal
// contiguous areas of the same stone color and the same dead/alive
// marking — so a living black group and a marked-dead black group
// touching each other are different chains, as are two separate colors
// or two disjoint patches of empty space.
//
// What:
//
//   - Info carries a chain's color, dead marking, the region it belongs
//     to (or -1 if it spans more than one, which only empty chains can
//     do, via connection blockers), its member points, the ids of
//     neighboring chains, the adjacent points of other chains/colors
//     bordering it, and its liberties (adjacent empty points).
//   - Decompose returns the per-point chain id grid plus the Info slice.
//
// Why:
//
//   - Chains are the unit package macrochain unions into a single living
//     group's "sphere", and the unit whose liberties matter for the
//     pseudolegality check used during eye-value estimation.
//
// Complexity:
//
//   - Decompose: O(Height*Width) time and memory.
package chain
