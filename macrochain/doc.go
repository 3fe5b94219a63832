// Package macrochain unifies chains of living stones into macrochains
// (pass P5): maximal unions of a color's non-empty chains reachable from
// one another by walking through chain-internal links or through
// unclaimed ("regionless") space that isn't connection-blocked for that
// color's opponent.
//
// What:
//
//   - Info carries a macrochain's region, color, member points, the set
//     of chain.ID it unions, and (filled in later by package eye) which
//     points of the macrochain border each eye.
//   - Unify returns the per-point macrochain id grid plus the Info slice.
//
// Why:
//
//   - Two living groups connected only through a shared liberty or a
//     narrow regionless corridor still cooperate for life and death —
//     macrochains are the unit package eye checks potential eyes against
//     when deciding which points are real eyes versus false ones.
//
// Complexity:
//
//   - Unify: O(Height*Width) time and memory.
package macrochain
