package chain

import (
	"github.com/katalvlaran/goscorer/board"
	"github.com/katalvlaran/goscorer/region"
)

// ID identifies a chain within a Decompose result.
type ID int

const None ID = -1

// Info describes one chain: a maximal contiguous area of one stone color
// and one dead/alive marking.
type Info struct {
	Color        board.Color
	IsMarkedDead bool
	// RegionID is the single region this chain belongs to, or region.None
	// if it spans more than one (only possible for an empty chain that
	// crosses a connection blocker).
	RegionID   region.ID
	Points     []board.Point
	Neighbors  map[ID]bool
	Adjacents  map[board.Point]bool
	Liberties  map[board.Point]bool
}

// Decompose builds the chain id grid and per-id Info from the board and
// its region id grid (region.Decompose).
//
// Complexity: O(Height*Width).
func Decompose(b *board.Board, regionIDs [][]region.ID) ([][]ID, []*Info) {
	chainIDs := newIDGrid(b.Height, b.Width)
	var infos []*Info

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if chainIDs[y][x] != None {
				continue
			}
			color := b.Stones[y][x]
			isDead := b.Dead[y][x]
			id := ID(len(infos))
			infos = append(infos, &Info{
				Color:        color,
				IsMarkedDead: isDead,
				RegionID:     regionIDs[y][x],
				Neighbors:    map[ID]bool{},
				Adjacents:    map[board.Point]bool{},
				Liberties:    map[board.Point]bool{},
			})
			board.Invariant(isDead || color == board.Empty || regionIDs[y][x] != region.None,
				"chain: living stone at (%d,%d) has no region", y, x)

			fill(b, board.Point{Y: y, X: x}, id, color, isDead, regionIDs, chainIDs, infos)
		}
	}

	return chainIDs, infos
}

// fill walks chain id "with" outward from seed, claiming same-color
// same-liveness points and recording cross-chain adjacency/liberties at
// the boundary without recursing past it.
func fill(b *board.Board, seed board.Point, with ID, color board.Color, isDead bool, regionIDs [][]region.ID, chainIDs [][]ID, infos []*Info) {
	stack := []board.Point{seed}
	info := infos[with]

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if chainIDs[p.Y][p.X] == with {
			continue
		}
		if chainIDs[p.Y][p.X] != None {
			other := chainIDs[p.Y][p.X]
			infos[other].Neighbors[with] = true
			info.Neighbors[other] = true
			info.Adjacents[p] = true
			if b.Stones[p.Y][p.X] == board.Empty {
				info.Liberties[p] = true
			}
			continue
		}
		if b.Stones[p.Y][p.X] != color || b.Dead[p.Y][p.X] != isDead {
			info.Adjacents[p] = true
			if b.Stones[p.Y][p.X] == board.Empty {
				info.Liberties[p] = true
			}
			continue
		}

		chainIDs[p.Y][p.X] = with
		info.Points = append(info.Points, p)
		if info.RegionID != regionIDs[p.Y][p.X] {
			info.RegionID = region.None
		}
		board.Invariant(color == board.Empty || regionIDs[p.Y][p.X] == info.RegionID,
			"chain: contiguous same-color same-liveness points must share a region")

		stack = append(stack, b.Neighbors4(p.Y, p.X)...)
	}
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
