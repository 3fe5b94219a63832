package eye

import (
	"github.com/katalvlaran/goscorer/board"
	"github.com/katalvlaran/goscorer/chain"
)

// PointInfo accumulates per-point statistics within one real eye, used
// only as scratch state for EstimateValues.
type PointInfo struct {
	AdjPoints              []board.Point
	AdjEyePoints           []board.Point
	NumEmptyAdjPoints      int
	NumEmptyAdjFalsePoints int
	NumEmptyAdjEyePoints   int
	NumOppAdjFalsePoints   int
	// IsFalseEyePoke is true on an opponent stone adjacent to an
	// opponent stone thrown in on a false eye point, or adjacent to two
	// or more empty false eye points: such a stone can never be used by
	// pla to block off the eye.
	IsFalseEyePoke bool
	// NumMovesToBlock estimates how many moves it would take the
	// defender to seal this point off as part of the eye: +1 per
	// adjacent empty point outside the eye, +1 per adjacent empty eye
	// point that's adjacent to an opponent throw-in, +1 per adjacent
	// opponent stone in the eye that's adjacent to an empty false eye
	// point, +1000 per adjacent opponent stone that is a false eye poke
	// or sits on a false eye point.
	NumMovesToBlock int
}

// EstimateValues fills in RealPoints and EyeValue for every eye, using
// the board, its chain decomposition (for pseudolegality checks), and
// isFalseEyePoint (see package falseeye) which must have been computed
// with the eye values not yet estimated, i.e. all zero, so that the
// life-and-death false eye determination doesn't depend on results this
// function produces.
//
// Complexity: O(Height*Width) amortized.
func EstimateValues(
	b *board.Board,
	chainIDs [][]chain.ID, chainInfos []*chain.Info,
	isFalseEyePoint [][]bool,
	infos []*Info,
) {
	for _, info := range infos {
		estimateOne(b, chainIDs, chainInfos, isFalseEyePoint, info)
	}
}

func estimateOne(b *board.Board, chainIDs [][]chain.ID, chainInfos []*chain.Info, isFalseEyePoint [][]bool, eyeInfo *Info) {
	pla := eyeInfo.Pla
	opp := board.Opponent(pla)

	infoByPoint := map[board.Point]*PointInfo{}
	for p := range eyeInfo.PotentialPoints {
		if !isFalseEyePoint[p.Y][p.X] {
			eyeInfo.RealPoints[p] = true
			infoByPoint[p] = &PointInfo{}
		}
	}

	for p := range eyeInfo.RealPoints {
		info := infoByPoint[p]
		for _, n := range b.Neighbors4(p.Y, p.X) {
			info.AdjPoints = append(info.AdjPoints, n)
			if eyeInfo.RealPoints[n] {
				info.AdjEyePoints = append(info.AdjEyePoints, n)
			}
		}
	}

	for p := range eyeInfo.RealPoints {
		info := infoByPoint[p]
		for _, n := range info.AdjPoints {
			stone := b.Stones[n.Y][n.X]
			if stone == board.Empty {
				info.NumEmptyAdjPoints++
				if eyeInfo.RealPoints[n] {
					info.NumEmptyAdjEyePoints++
				}
				if isFalseEyePoint[n.Y][n.X] {
					info.NumEmptyAdjFalsePoints++
				}
			}
			if stone == opp && isFalseEyePoint[n.Y][n.X] {
				info.NumOppAdjFalsePoints++
			}
		}
		if info.NumOppAdjFalsePoints > 0 && b.Stones[p.Y][p.X] == opp {
			info.IsFalseEyePoke = true
		}
		if info.NumEmptyAdjFalsePoints >= 2 && b.Stones[p.Y][p.X] == opp {
			info.IsFalseEyePoke = true
		}
	}

	for p := range eyeInfo.RealPoints {
		info := infoByPoint[p]
		for _, n := range info.AdjPoints {
			block := 0
			stone := b.Stones[n.Y][n.X]
			if stone == board.Empty && !eyeInfo.RealPoints[n] {
				block = 1
			}
			if nInfo, ok := infoByPoint[n]; ok {
				if stone == board.Empty && nInfo.NumOppAdjFalsePoints >= 1 {
					block = 1
				}
				if stone == opp && nInfo.NumEmptyAdjFalsePoints >= 1 {
					block = 1
				}
				if stone == opp && nInfo.IsFalseEyePoke {
					block = 1000
				}
			}
			if stone == opp && isFalseEyePoint[n.Y][n.X] {
				block = 1000
			}
			info.NumMovesToBlock += block
		}
	}

	eyeValue := 0
	if countPoints(eyeInfo.RealPoints, func(p board.Point) bool { return infoByPoint[p].NumMovesToBlock <= 1 }) >= 1 {
		eyeValue = 1
	}

	for pointToDelete := range eyeInfo.RealPoints {
		if !IsPseudolegal(b, chainIDs, chainInfos, pointToDelete.Y, pointToDelete.X, pla) {
			continue
		}
		pieces := GetPieces(b, eyeInfo.RealPoints, map[board.Point]bool{pointToDelete: true})
		if len(pieces) < 2 {
			continue
		}
		shouldBonus := infoByPoint[pointToDelete].NumOppAdjFalsePoints == 1

		numDefiniteEyePieces := 0
		for _, piece := range pieces {
			zeroMovesToBlock := false
			for point := range piece {
				if infoByPoint[point].NumMovesToBlock <= 0 {
					zeroMovesToBlock = true
					break
				}
				if shouldBonus && infoByPoint[point].NumMovesToBlock <= 1 {
					zeroMovesToBlock = true
					break
				}
			}
			if zeroMovesToBlock {
				numDefiniteEyePieces++
			}
		}
		eyeValue = max(eyeValue, numDefiniteEyePieces)
	}

	markedDeadCount := countPoints(eyeInfo.RealPoints, func(p board.Point) bool {
		return b.Stones[p.Y][p.X] == opp && b.Dead[p.Y][p.X]
	})
	if markedDeadCount >= 5 {
		eyeValue = max(eyeValue, 1)
	}
	if markedDeadCount >= 8 {
		eyeValue = max(eyeValue, 2)
	}

	if eyeValue < 2 {
		size := len(eyeInfo.RealPoints)
		w1 := countPoints(eyeInfo.RealPoints, func(p board.Point) bool { return infoByPoint[p].NumMovesToBlock >= 1 })
		w2 := countPoints(eyeInfo.RealPoints, func(p board.Point) bool { return infoByPoint[p].NumMovesToBlock >= 2 })
		oppDeg2 := countPoints(eyeInfo.RealPoints, func(p board.Point) bool {
			return b.Stones[p.Y][p.X] == opp && len(infoByPoint[p].AdjEyePoints) >= 2
		})
		if size-w1-w2-oppDeg2 >= 6 {
			eyeValue = max(eyeValue, 2)
		}
	}

	if eyeValue < 2 {
		c4 := countPoints(eyeInfo.RealPoints, func(p board.Point) bool {
			return b.Stones[p.Y][p.X] == board.Empty && len(infoByPoint[p].AdjEyePoints) >= 4
		})
		c3 := countPoints(eyeInfo.RealPoints, func(p board.Point) bool {
			return b.Stones[p.Y][p.X] == board.Empty && len(infoByPoint[p].AdjEyePoints) >= 3
		})
		if c4+c3 >= 6 {
			eyeValue = max(eyeValue, 2)
		}
	}

	if eyeValue < 2 {
	outer:
		for pointToDelete := range eyeInfo.RealPoints {
			if b.Stones[pointToDelete.Y][pointToDelete.X] != board.Empty {
				continue
			}
			if b.IsOnBorder(pointToDelete.Y, pointToDelete.X) {
				continue
			}
			info1 := infoByPoint[pointToDelete]
			if info1.NumMovesToBlock > 1 || len(info1.AdjEyePoints) < 3 {
				continue
			}

			for _, adjacent := range info1.AdjEyePoints {
				info2 := infoByPoint[adjacent]
				if len(info2.AdjEyePoints) < 3 {
					continue
				}
				if info2.NumMovesToBlock > 1 {
					continue
				}
				if b.Stones[adjacent.Y][adjacent.X] != board.Empty && info2.NumEmptyAdjEyePoints <= 1 {
					continue
				}

				pieces := GetPieces(b, eyeInfo.RealPoints, map[board.Point]bool{pointToDelete: true, adjacent: true})
				if len(pieces) < 2 {
					continue
				}

				numDefiniteEyePieces := 0
				numDoubleDefiniteEyePieces := 0
				for _, piece := range pieces {
					numZeroMovesToBlock := 0
					for point := range piece {
						if infoByPoint[point].NumMovesToBlock <= 0 {
							numZeroMovesToBlock++
							if numZeroMovesToBlock >= 2 {
								break
							}
						}
					}
					if numZeroMovesToBlock >= 1 {
						numDefiniteEyePieces++
					}
					if numZeroMovesToBlock >= 2 {
						numDoubleDefiniteEyePieces++
					}
				}

				if numDefiniteEyePieces >= 2 && numDoubleDefiniteEyePieces >= 1 &&
					(b.Stones[adjacent.Y][adjacent.X] == board.Empty || numDoubleDefiniteEyePieces >= 2) {
					eyeValue = max(eyeValue, 2)
					break
				}
			}
			if eyeValue >= 2 {
				break outer
			}
		}
	}

	eyeInfo.EyeValue = min(eyeValue, 2)
}

func countPoints(points map[board.Point]bool, predicate func(board.Point) bool) int {
	c := 0
	for p := range points {
		if predicate(p) {
			c++
		}
	}
	return c
}
