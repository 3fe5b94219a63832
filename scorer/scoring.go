package scorer

import (
	"github.com/katalvlaran/goscorer/board"
	"github.com/katalvlaran/goscorer/chain"
	"github.com/katalvlaran/goscorer/connblock"
	"github.com/katalvlaran/goscorer/eye"
	"github.com/katalvlaran/goscorer/falseeye"
	"github.com/katalvlaran/goscorer/macrochain"
	"github.com/katalvlaran/goscorer/reach"
	"github.com/katalvlaran/goscorer/region"
)

// TerritoryScoring runs the full P1–P9 pipeline over stones/dead and
// returns a LocScore for every point.
//
// Complexity: O(Height*Width), dominated by the pipeline passes it calls.
func TerritoryScoring(stones [][]board.Color, dead [][]bool, opts Options) ([][]LocScore, error) {
	b, err := board.New(stones, dead)
	if err != nil {
		return nil, err
	}

	blocks := connblock.Mark(b)
	strictBlack, strictWhite := reach.Strict(b)
	blockedBlack, blockedWhite := reach.Blocked(b, blocks)
	regionIDs, regionInfos := region.Decompose(b, blocks, blockedBlack, blockedWhite)
	chainIDs, chainInfos := chain.Decompose(b, regionIDs)
	macrochainIDs, macrochainInfos := macrochain.Unify(b, blocks, regionIDs, chainIDs, chainInfos)
	eyeIDs, eyeInfos := eye.FindPotential(b, strictBlack, strictWhite, regionIDs, regionInfos, macrochainIDs, macrochainInfos)

	// Detect false eye points right now, while every eye is assumed to
	// have value 0, to get the life-and-death false eye points.
	isFalseEyePoint := falseeye.Mark(b, regionIDs, eyeInfos, macrochainInfos)

	eye.EstimateValues(b, chainIDs, chainInfos, isFalseEyePoint, eyeInfos)

	// Detect false eye points again with the real eye values now filled
	// in, to get the (generally smaller) set of unscorable false eyes.
	isUnscorableFalseEyePoint := falseeye.Mark(b, regionIDs, eyeInfos, macrochainInfos)

	scoring := markScoring(b, opts, strictBlack, strictWhite, regionIDs, regionInfos, chainIDs, chainInfos, isFalseEyePoint, eyeIDs, eyeInfos, isUnscorableFalseEyePoint)
	return scoring, nil
}
