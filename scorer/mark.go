package scorer

import (
	"github.com/katalvlaran/goscorer/board"
	"github.com/katalvlaran/goscorer/chain"
	"github.com/katalvlaran/goscorer/eye"
	"github.com/katalvlaran/goscorer/region"
)

// markScoring fills in the final LocScore grid from every earlier pass's
// output, porting the reference engine's mark_scoring.
func markScoring(
	b *board.Board,
	opts Options,
	strictReachesBlack, strictReachesWhite [][]bool,
	regionIDs [][]region.ID, regionInfos []*region.Info,
	chainIDs [][]chain.ID, chainInfos []*chain.Info,
	isFalseEyePoint [][]bool,
	eyeIDs [][]eye.ID, eyeInfos []*eye.Info,
	isUnscorableFalseEyePoint [][]bool,
) [][]LocScore {
	// Throw-ins marked dead on an unscorable false eye point also spoil
	// the territory value of their immediate neighbors, since a capture
	// there will eventually need a recapturing move.
	extraUnscorableFor := map[board.Color]map[board.Point]bool{
		board.Black: {},
		board.White: {},
	}
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if !isUnscorableFalseEyePoint[y][x] || b.Stones[y][x] == board.Empty || !b.Dead[y][x] {
				continue
			}
			spoiled := board.Opponent(b.Stones[y][x])
			for _, n := range b.Neighbors4(y, x) {
				extraUnscorableFor[spoiled][n] = true
			}
		}
	}

	scoring := make([][]LocScore, b.Height)
	for y := 0; y < b.Height; y++ {
		scoring[y] = make([]LocScore, b.Width)
		for x := 0; x < b.Width; x++ {
			s := &scoring[y][x]
			regionID := regionIDs[y][x]
			if regionID == region.None {
				s.IsDame = true
				continue
			}

			regionInfo := regionInfos[regionID]
			color := regionInfo.Color

			totalEyes := 0
			for eyeIDInt := range regionInfo.Eyes {
				totalEyes += eyeInfos[eyeIDInt].EyeValue
			}
			if totalEyes <= 1 {
				s.BelongsToSekiGroup = color
			}

			if isFalseEyePoint[y][x] {
				s.IsFalseEye = true
			}
			if isUnscorableFalseEyePoint[y][x] {
				s.IsUnscorableFalseEye = true
			}
			p := board.Point{Y: y, X: x}
			if (b.Stones[y][x] == board.Empty || b.Dead[y][x]) && extraUnscorableFor[color][p] {
				s.IsUnscorableFalseEye = true
			}

			s.EyeValue = 0
			if eyeID := eyeIDs[y][x]; eyeID != eye.None {
				s.EyeValue = eyeInfos[eyeID].EyeValue
			}

			if (b.Stones[y][x] != color || b.Dead[y][x]) &&
				s.BelongsToSekiGroup == board.Empty &&
				(opts.ScoreFalseEyes || !s.IsUnscorableFalseEye) &&
				chainInfos[chainIDs[y][x]].RegionID == regionID &&
				!(color == board.White && strictReachesBlack[y][x]) &&
				!(color == board.Black && strictReachesWhite[y][x]) {
				s.IsTerritoryFor = color
			}
		}
	}

	return scoring
}
