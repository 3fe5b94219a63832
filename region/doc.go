// Package region decomposes the board into regions (pass P3): maximal
// contiguous areas that the Blocked reachability flood of package reach
// shows as belonging to exactly one color, unioned across anything that
// is not a living opposing stone or a connection blocker.
//
// What:
//
//   - Info carries a region's owning color and the set of points
//     (region-and-dame) the flood walked through to build it, whether or
//     not each individual point ended up actually assigned to the region
//     (some are merely touched on the way past a connection blocker).
//   - Decompose returns the per-point region id grid plus the Info for
//     each allocated id.
//
// Why:
//
//   - Regions are the scoring pipeline's notion of "a player's sphere of
//     influence": everything downstream (chains inside it, eyes within it)
//     is scoped to one region at a time.
//
// Complexity:
//
//   - Decompose: O(Height*Width) time and memory.
package region
