// Package reach computes reachability floods (pass P2 of the scoring
// pipeline): for each point, whether it connects to a living stone of a
// given color without crossing a living stone of the other color.
//
// What:
//
//   - Strict: the flood ignores connection blockers entirely; used for area
//     scoring and as an input to eye-looseness detection.
//   - Blocked: the same flood, but additionally refuses to propagate past a
//     point a connblock.Mark call has blocked for the opposing color. Used
//     for territory scoring's region decomposition.
//
// Why:
//
//   - A living group's territory is, to a first approximation, "everything
//     that reaches it and doesn't reach the opponent" — but a handful of
//     local shapes (see package connblock) need the flood stopped early to
//     avoid over-claiming space the group doesn't really control.
//
// Complexity:
//
//   - Strict and Blocked: O(Height*Width) time and memory each.
package reach
