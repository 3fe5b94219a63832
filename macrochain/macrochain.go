package macrochain

import (
	"github.com/katalvlaran/goscorer/board"
	"github.com/katalvlaran/goscorer/chain"
	"github.com/katalvlaran/goscorer/region"
)

// ID identifies a macrochain within a Unify result.
type ID int

const None ID = -1

// Info describes one macrochain: a union of one color's living chains
// reachable from one another through chain links or unblocked regionless
// space.
type Info struct {
	RegionID region.ID
	Color    board.Color
	Points   []board.Point
	Chains   map[chain.ID]bool
	// EyeNeighborsFrom maps an eye id (see package eye) to the points of
	// this macrochain that border it. Populated by eye.FindPotential.
	EyeNeighborsFrom map[int]map[board.Point]bool
}

// Unify builds the macrochain id grid and per-id Info from the board,
// its connection blockers, region ids, and chain decomposition.
//
// Complexity: O(Height*Width).
func Unify(b *board.Board, connectionBlocks [][]board.Color, regionIDs [][]region.ID, chainIDs [][]chain.ID, chainInfos []*chain.Info) ([][]ID, []*Info) {
	macrochainIDs := newIDGrid(b.Height, b.Width)
	var infos []*Info

	for _, pla := range [2]board.Color{board.Black, board.White} {
		opp := board.Opponent(pla)
		chainsHandled := map[chain.ID]bool{}
		visited := board.NewBoolGrid(b.Height, b.Width)

		for cid := chain.ID(0); int(cid) < len(chainInfos); cid++ {
			if chainsHandled[cid] {
				continue
			}
			cinfo := chainInfos[cid]
			if !(cinfo.Color == pla && !cinfo.IsMarkedDead) {
				continue
			}
			regionID := cinfo.RegionID
			board.Invariant(regionID != region.None, "macrochain: living chain has no region")

			id := ID(len(infos))
			var points []board.Point
			chains := map[chain.ID]bool{}

			var lastShouldRecurse bool
			admit := func(board.Point) bool { return true }
			visit := func(p board.Point) {
				pcid := chainIDs[p.Y][p.X]
				switch {
				case b.Stones[p.Y][p.X] == pla && !b.Dead[p.Y][p.X]:
					macrochainIDs[p.Y][p.X] = id
					points = append(points, p)
					if !chains[pcid] {
						chains[pcid] = true
						chainsHandled[pcid] = true
					}
					lastShouldRecurse = true
				case regionIDs[p.Y][p.X] == region.None && connectionBlocks[p.Y][p.X] != opp:
					lastShouldRecurse = true
				default:
					lastShouldRecurse = false
				}
			}
			propagate := func(board.Point) bool { return lastShouldRecurse }

			seed := cinfo.Points[0]
			board.FloodFill(b, []board.Point{seed}, visited, admit, propagate, visit)

			infos = append(infos, &Info{
				RegionID:         regionID,
				Color:            pla,
				Points:           points,
				Chains:           chains,
				EyeNeighborsFrom: map[int]map[board.Point]bool{},
			})
		}
	}

	return macrochainIDs, infos
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
