// Package scorer runs the full P1–P9 pipeline and produces the final
// per-point scoring. It is the only package that imports every other
// pipeline package (board, connblock, reach, region, chain, macrochain,
// eye, falseeye) — every earlier package is a self-contained pass, and
// scorer is the thing that wires them together in order and synthesizes
// their outputs into a result callers actually want.
//
// What:
//
//   - LocScore is the per-point output: territory ownership, seki-group
//     membership, false/unscorable-false eye flags, dame flag, and the
//     eye value of the eyespace the point belongs to (if any).
//   - TerritoryScoring runs the full pipeline (P1 through P9, with P7 run
//     twice as the pipeline requires) and returns a LocScore grid.
//   - AreaScoring is a much simpler collaborator: area scoring doesn't
//     need connection blocks, regions, chains, or eyes at all, just two
//     flood fills from each color's living stones (see area.go).
//   - FinalTerritoryScore / FinalAreaScore turn a scoring grid into the
//     numeric score each side would actually report, folding in
//     marked-dead stone points, captures already off the board, and komi.
//
// Why a dedicated synthesis stage:
//
//   - Every earlier pass answers one narrow structural question (is this
//     a region? a chain? a potential eye? false?). None of them alone
//     know how to turn "region X has one eye of value 1" into "this is a
//     seki, don't count it as territory." That synthesis — the seki
//     heuristic, the false-eye-poke exclusion zone, the final
//     territory-vs-dame decision — only makes sense with every earlier
//     pass's output in hand at once, which is what mark_scoring (ported
//     here as the body of TerritoryScoring) does in one pass over the
//     board.
//
// Complexity: O(Height*Width) beyond the cost of the passes it calls.
package scorer
