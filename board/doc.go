// Package board defines the grid that every pass of the scoring pipeline
// reads: a rectangular array of stone colors plus a per-point dead-stone
// marking. It also hosts the traversal machinery several later passes
// share, FloodFill, an iterative (explicit-stack) 4-connected flood that
// reach, region and macrochain specialize with their own admission rule
// and their own per-visit bookkeeping (chain and eye run their own
// explicit-stack walks).
//
// What
//
//   - Board wraps a deep-copied, validated [][]Color plus [][]bool dead grid.
//   - Color is EMPTY, BLACK, or WHITE; Opponent flips BLACK<->WHITE.
//   - FloodFill walks 4-connected neighbors from a set of seeds, visiting a
//     point iff an admit predicate accepts it, with no recursion so depth
//     can reach Height*Width without blowing the call stack.
//
// Why
//
//   - Every later pass is a flood fill over the same grid with a different
//     stopping rule; sharing the traversal keeps the passes that use it
//     short and keeps their "no recursion" discipline in one place.
//
// Errors
//
//   - ErrEmptyBoard: stones has no rows or no columns.
//   - ErrNonRectangularStones / ErrNonRectangularDead: a row length differs.
//   - ErrDeadSizeMismatch: dead does not have the same row count as stones.
//   - ErrInvalidColor: a stone value is not EMPTY, BLACK, or WHITE.
package board
