package falseeye

import (
	"github.com/katalvlaran/goscorer/board"
	"github.com/katalvlaran/goscorer/eye"
	"github.com/katalvlaran/goscorer/macrochain"
	"github.com/katalvlaran/goscorer/region"
)

// pointDeltas are the four orthogonal offsets, used here for point-set
// arithmetic that never touches the board array directly.
var pointDeltas = [4]board.Point{{Y: -1, X: 0}, {Y: 1, X: 0}, {Y: 0, X: -1}, {Y: 0, X: 1}}

// Mark flags every point within a potential eye that is false for at
// least one of the macrochains bordering it, given the current eye
// values (infos' EyeValue fields — callers run this once before
// eye.EstimateValues with all values at zero, and again afterward).
//
// Complexity: see package doc.
func Mark(b *board.Board, regionIDs [][]region.ID, eyeInfos []*eye.Info, macrochainInfos []*macrochain.Info) [][]bool {
	isFalseEyePoint := board.NewBoolGrid(b.Height, b.Width)

	for origEyeIdx, origEyeInfo := range eyeInfos {
		origEyeID := eye.ID(origEyeIdx)
		for origMacrochainIdx, neighborsFromEyePoints := range origEyeInfo.MacrochainNeighborsFrom {
			for p := range neighborsFromEyePoints {
				if markIfFalse(b, regionIDs, p, origEyeID, origEyeInfo, origMacrochainIdx, eyeInfos, macrochainInfos) {
					isFalseEyePoint[p.Y][p.X] = true
				}
			}
		}
	}

	return isFalseEyePoint
}

// markIfFalse runs the search for one (eye, macrochain, point) triple and
// reports whether p should be marked false.
func markIfFalse(b *board.Board, regionIDs [][]region.ID, p board.Point, origEyeID eye.ID, origEyeInfo *eye.Info, origMacrochainID macrochain.ID, eyeInfos []*eye.Info, macrochainInfos []*macrochain.Info) bool {
	sameEyeAdjCount := 0
	for _, d := range pointDeltas {
		if origEyeInfo.PotentialPoints[board.Point{Y: p.Y + d.Y, X: p.X + d.X}] {
			sameEyeAdjCount++
		}
	}
	if sameEyeAdjCount > 1 {
		return false
	}

	reachingSides := map[board.Point]bool{}
	visitedMacro := map[macrochain.ID]bool{}
	visitedOtherEyes := map[eye.ID]bool{}
	visitedOrigEyePoints := map[board.Point]bool{p: true}

	targetSideCount := 0
	for _, d := range pointDeltas {
		n := board.Point{Y: p.Y + d.Y, X: p.X + d.X}
		if b.InBounds(n.Y, n.X) && regionIDs[n.Y][n.X] == origEyeInfo.RegionID {
			targetSideCount++
		}
	}

	var search func(macrochain.ID) bool
	search = func(mcID macrochain.ID) bool {
		if visitedMacro[mcID] {
			return false
		}
		visitedMacro[mcID] = true
		mcInfo := macrochainInfos[mcID]

		for eyeIdx, neighborsFromMacroPoints := range mcInfo.EyeNeighborsFrom {
			eyeID := eye.ID(eyeIdx)
			if visitedOtherEyes[eyeID] {
				continue
			}
			if eyeID == origEyeID {
				for n := range neighborsFromMacroPoints {
					if board.IsAdjacent(n, p) {
						reachingSides[n] = true
					}
				}
				if len(reachingSides) >= targetSideCount {
					return true
				}

				pointsReached := findRecursivelyAdjacentPoints(origEyeInfo.PotentialPoints, origEyeInfo.MacrochainNeighborsFrom[mcID], visitedOrigEyePoints)
				if len(pointsReached) == 0 {
					continue
				}
				for pt := range pointsReached {
					visitedOrigEyePoints[pt] = true
				}

				if origEyeInfo.EyeValue > 0 {
					for pt := range pointsReached {
						if origEyeInfo.RealPoints[pt] {
							return true
						}
					}
				}

				for pt := range pointsReached {
					if board.IsAdjacent(pt, p) {
						reachingSides[pt] = true
					}
				}
				if len(reachingSides) >= targetSideCount {
					return true
				}

				for nextMcIdx, fromEyePoints := range origEyeInfo.MacrochainNeighborsFrom {
					touched := false
					for pt := range pointsReached {
						if fromEyePoints[pt] {
							touched = true
							break
						}
					}
					if touched && search(nextMcIdx) {
						return true
					}
				}
			} else {
				visitedOtherEyes[eyeID] = true
				otherEyeInfo := eyeInfos[eyeID]
				if otherEyeInfo.EyeValue > 0 {
					return true
				}
				for nextMcIdx := range otherEyeInfo.MacrochainNeighborsFrom {
					if search(nextMcIdx) {
						return true
					}
				}
			}
		}
		return false
	}

	return !search(origMacrochainID)
}

// findRecursivelyAdjacentPoints expands from-points through within,
// stopping at anything in excluding, without touching the board array —
// it operates purely on the point sets involved.
func findRecursivelyAdjacentPoints(within, from, excluding map[board.Point]bool) map[board.Point]bool {
	expanded := map[board.Point]bool{}
	queue := make([]board.Point, 0, len(from))
	for p := range from {
		queue = append(queue, p)
	}

	for i := 0; i < len(queue); i++ {
		p := queue[i]
		if excluding[p] || expanded[p] || !within[p] {
			continue
		}
		expanded[p] = true
		for _, d := range pointDeltas {
			queue = append(queue, board.Point{Y: p.Y + d.Y, X: p.X + d.X})
		}
	}

	return expanded
}
