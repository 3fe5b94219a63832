package reach

import "github.com/katalvlaran/goscorer/board"

// Strict computes, for each color, which points reach a living stone of
// that color without crossing a living opposing stone — ignoring
// connection blockers entirely.
func Strict(b *board.Board) (reachesBlack, reachesWhite [][]bool) {
	return flood(b, nil)
}

// Blocked is Strict but additionally stops propagation through any point
// connblock.Mark assigned to the opposing color.
func Blocked(b *board.Board, connectionBlocks [][]board.Color) (reachesBlack, reachesWhite [][]bool) {
	return flood(b, connectionBlocks)
}

func flood(b *board.Board, connectionBlocks [][]board.Color) (reachesBlack, reachesWhite [][]bool) {
	reachesBlack = board.NewBoolGrid(b.Height, b.Width)
	reachesWhite = board.NewBoolGrid(b.Height, b.Width)

	fillOne(b, board.Black, reachesBlack, connectionBlocks)
	fillOne(b, board.White, reachesWhite, connectionBlocks)

	return reachesBlack, reachesWhite
}

// fillOne floods reachesPla from every living stone of pla, using reachesPla
// itself as the visited grid.
func fillOne(b *board.Board, pla board.Color, reachesPla [][]bool, connectionBlocks [][]board.Color) {
	opp := board.Opponent(pla)

	var seeds []board.Point
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.IsLivingColor(y, x, pla) {
				seeds = append(seeds, board.Point{Y: y, X: x})
			}
		}
	}
	if len(seeds) == 0 {
		return
	}

	admit := func(p board.Point) bool {
		return b.Stones[p.Y][p.X] != opp || b.Dead[p.Y][p.X]
	}
	propagate := func(p board.Point) bool {
		return connectionBlocks == nil || connectionBlocks[p.Y][p.X] != opp
	}

	board.FloodFill(b, seeds, reachesPla, admit, propagate, nil)
}
