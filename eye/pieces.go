package eye

import (
	"github.com/katalvlaran/goscorer/board"
	"github.com/katalvlaran/goscorer/chain"
)

// IsPseudolegal reports whether pla could play at (y,x): the point must
// be empty, and at least one of its on-board neighbors must either not
// hold an opponent stone (dead or not), or hold one whose chain is already in
// atari (one liberty or fewer, meaning the move would capture).
func IsPseudolegal(b *board.Board, chainIDs [][]chain.ID, chainInfos []*chain.Info, y, x int, pla board.Color) bool {
	if b.Stones[y][x] != board.Empty {
		return false
	}
	opp := board.Opponent(pla)
	for _, n := range b.Neighbors4(y, x) {
		if b.Stones[n.Y][n.X] != opp {
			return true
		}
		if len(chainInfos[chainIDs[n.Y][n.X]].Liberties) <= 1 {
			return true
		}
	}
	return false
}

// GetPieces returns the connected components of points, restricted to
// board adjacency, after conceptually deleting toDelete. Used by
// EstimateValues to test whether playing a given point would split an
// eyespace into multiple independently-defensible pieces.
func GetPieces(b *board.Board, points map[board.Point]bool, toDelete map[board.Point]bool) []map[board.Point]bool {
	used := map[board.Point]bool{}
	var pieces []map[board.Point]bool

	for seed := range points {
		if used[seed] {
			continue
		}
		piece := map[board.Point]bool{}
		stack := []board.Point{seed}
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if used[p] || toDelete[p] {
				continue
			}
			used[p] = true
			piece[p] = true

			for _, n := range b.Neighbors4(p.Y, p.X) {
				if points[n] && !used[n] {
					stack = append(stack, n)
				}
			}
		}
		if len(piece) > 0 {
			pieces = append(pieces, piece)
		}
	}

	return pieces
}
