package region

import (
	"github.com/katalvlaran/goscorer/board"
)

// ID identifies a region within a Decompose result. -1 means "no region":
// a dame point that no color's sphere of influence claimed.
type ID int

const None ID = -1

// Info describes one region: its owning color, the set of points the
// decomposition flood walked through (which may include shared dame
// points other regions also walked through, and points ultimately not
// claimed by this region), and the eyes later found within it.
type Info struct {
	Color         board.Color
	RegionAndDame map[board.Point]bool
	Eyes          map[int]bool // populated later by package eye
}

// Decompose builds the region id grid and per-id Info from the board and
// its Blocked reachability floods (reachesBlack/reachesWhite — see
// reach.Blocked).
//
// Complexity: O(Height*Width).
func Decompose(b *board.Board, connectionBlocks [][]board.Color, reachesBlack, reachesWhite [][]bool) ([][]ID, []*Info) {
	regionIDs := newIDGrid(b.Height, b.Width)
	var infos []*Info

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if reachesBlack[y][x] && !reachesWhite[y][x] && regionIDs[y][x] == None {
				id := ID(len(infos))
				infos = append(infos, &Info{Color: board.Black, RegionAndDame: map[board.Point]bool{}, Eyes: map[int]bool{}})
				fill(b, board.Point{Y: y, X: x}, id, board.White, connectionBlocks, reachesBlack, reachesWhite, regionIDs, infos[id])
			}
			if reachesWhite[y][x] && !reachesBlack[y][x] && regionIDs[y][x] == None {
				id := ID(len(infos))
				infos = append(infos, &Info{Color: board.White, RegionAndDame: map[board.Point]bool{}, Eyes: map[int]bool{}})
				fill(b, board.Point{Y: y, X: x}, id, board.Black, connectionBlocks, reachesWhite, reachesBlack, regionIDs, infos[id])
			}
		}
	}

	return regionIDs, infos
}

// fill walks region id "with" outward from seed, claiming points whose
// combined reachability (reachesPla and not reachesOpp) belongs to it,
// but also recording every point it merely passes through.
func fill(b *board.Board, seed board.Point, with ID, opp board.Color, connectionBlocks [][]board.Color, reachesPla, reachesOpp [][]bool, regionIDs [][]ID, info *Info) {
	localVisited := board.NewBoolGrid(b.Height, b.Width)

	admit := func(p board.Point) bool {
		if regionIDs[p.Y][p.X] != None {
			return false
		}
		if b.Stones[p.Y][p.X] == opp && !b.Dead[p.Y][p.X] {
			return false
		}
		return true
	}
	propagate := func(p board.Point) bool {
		return connectionBlocks[p.Y][p.X] != opp
	}
	visit := func(p board.Point) {
		info.RegionAndDame[p] = true
		if reachesPla[p.Y][p.X] && !reachesOpp[p.Y][p.X] {
			regionIDs[p.Y][p.X] = with
		}
	}

	board.FloodFill(b, []board.Point{seed}, localVisited, admit, propagate, visit)
}

func newIDGrid(height, width int) [][]ID {
	g := make([][]ID, height)
	for y := range g {
		g[y] = make([]ID, width)
		for x := range g[y] {
			g[y][x] = None
		}
	}
	return g
}
