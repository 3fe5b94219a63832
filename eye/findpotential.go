package eye

import (
	"github.com/katalvlaran/goscorer/board"
	"github.com/katalvlaran/goscorer/macrochain"
	"github.com/katalvlaran/goscorer/region"
)

// sentinelPrev is the placeholder "previous point" used for a potential
// eye's seed, which has no real predecessor to record as a macrochain
// border point.
var sentinelPrev = board.Point{Y: -1, X: -1}

// FindPotential walks each region's interior once, grouping its
// empty-or-dead points into potential eyes and recording which
// macrochains border each eye and from which of the eye's points.
//
// Complexity: O(Height*Width).
func FindPotential(
	b *board.Board,
	strictReachesBlack, strictReachesWhite [][]bool,
	regionIDs [][]region.ID, regionInfos []*region.Info,
	macrochainIDs [][]macrochain.ID, macrochainInfos []*macrochain.Info,
) ([][]ID, []*Info) {
	eyeIDs := newIDGrid(b.Height, b.Width)
	var infos []*Info
	visited := board.NewBoolGrid(b.Height, b.Width)

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if visited[y][x] || eyeIDs[y][x] != None {
				continue
			}
			if b.Stones[y][x] != board.Empty && !b.Dead[y][x] {
				continue
			}
			regionID := regionIDs[y][x]
			if regionID == region.None {
				continue
			}
			regionInfo := regionInfos[regionID]
			pla := regionInfo.Color
			isLoose := strictReachesWhite[y][x] && strictReachesBlack[y][x]

			board.Invariant(macrochainIDs[y][x] == macrochain.None, "eye: potential eye seed must not already be a macrochain point")

			eyeID := ID(len(infos))
			potentialPoints := map[board.Point]bool{}
			macrochainNeighborsFrom := map[macrochain.ID]map[board.Point]bool{}

			accRegion(b, board.Point{Y: y, X: x}, sentinelPrev, eyeID, regionID, regionIDs, macrochainIDs, macrochainInfos, visited, eyeIDs, potentialPoints, macrochainNeighborsFrom)

			infos = append(infos, &Info{
				Pla:                     pla,
				RegionID:                regionID,
				PotentialPoints:         potentialPoints,
				RealPoints:              map[board.Point]bool{},
				MacrochainNeighborsFrom: macrochainNeighborsFrom,
				IsLoose:                 isLoose,
				EyeValue:                0,
			})
			regionInfo.Eyes[int(eyeID)] = true
		}
	}

	return eyeIDs, infos
}

// accRegion is the iterative form of the reference engine's recursive
// acc_region: it accumulates empty/dead points of one region into a
// single potential eye while recording, for every living-stone point it
// touches along the way, which macrochain that point belongs to and
// which of the eye's points border it.
func accRegion(
	b *board.Board, seed, seedPrev board.Point, eyeID ID, regionID region.ID,
	regionIDs [][]region.ID, macrochainIDs [][]macrochain.ID, macrochainInfos []*macrochain.Info,
	visited [][]bool, eyeIDs [][]ID, potentialPoints map[board.Point]bool, macrochainNeighborsFrom map[macrochain.ID]map[board.Point]bool,
) {
	type frame struct {
		p, prev board.Point
	}
	stack := []frame{{seed, seedPrev}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		p := f.p

		if visited[p.Y][p.X] {
			continue
		}
		if regionIDs[p.Y][p.X] != regionID {
			continue
		}

		if mcid := macrochainIDs[p.Y][p.X]; mcid != macrochain.None {
			if macrochainNeighborsFrom[mcid] == nil {
				macrochainNeighborsFrom[mcid] = map[board.Point]bool{}
			}
			macrochainNeighborsFrom[mcid][f.prev] = true

			mcinfo := macrochainInfos[mcid]
			if mcinfo.EyeNeighborsFrom[int(eyeID)] == nil {
				mcinfo.EyeNeighborsFrom[int(eyeID)] = map[board.Point]bool{}
			}
			mcinfo.EyeNeighborsFrom[int(eyeID)][p] = true
		}

		if b.Stones[p.Y][p.X] != board.Empty && !b.Dead[p.Y][p.X] {
			continue
		}

		visited[p.Y][p.X] = true
		eyeIDs[p.Y][p.X] = eyeID
		potentialPoints[p] = true

		for _, n := range b.Neighbors4(p.Y, p.X) {
			stack = append(stack, frame{n, p})
		}
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
