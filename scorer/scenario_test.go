package scorer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/goscorer/board"
	"github.com/katalvlaran/goscorer/scorer"
)

// TestFinalScoringMatchesReferenceBoard reproduces goscorer.py's
// test_final_scoring board (no marked-dead stones) verbatim, checking
// every scoring variant the original test asserts: plain territory
// rules, territory rules with false eyes counted, komi added on top,
// captures added on top of that, and area rules.
func TestFinalScoringMatchesReferenceBoard(t *testing.T) {
	const E, B, W = board.Empty, board.Black, board.White
	stones := [][]board.Color{
		{E, B, W, E, W, B, B, W, E},
		{B, E, W, E, W, B, W, E, W},
		{W, W, W, W, B, B, W, E, E},
		{B, B, B, B, B, B, W, W, W},
		{E, E, E, E, B, E, B, E, W},
	}
	dead := emptyDead(5, 9)

	territory, err := scorer.FinalTerritoryScore(stones, dead, 0, 0, 0, scorer.Options{})
	require.NoError(t, err)
	assert.Equal(t, float64(4), territory[board.Black])
	assert.Equal(t, float64(4), territory[board.White])

	withFalseEyes, err := scorer.FinalTerritoryScore(stones, dead, 0, 0, 0, scorer.Options{ScoreFalseEyes: true})
	require.NoError(t, err)
	assert.Equal(t, float64(5), withFalseEyes[board.Black])
	assert.Equal(t, float64(4), withFalseEyes[board.White])

	withKomi, err := scorer.FinalTerritoryScore(stones, dead, 0, 0, 3.5, scorer.Options{ScoreFalseEyes: true})
	require.NoError(t, err)
	assert.Equal(t, float64(5), withKomi[board.Black])
	assert.Equal(t, float64(7.5), withKomi[board.White])

	withCaptures, err := scorer.FinalTerritoryScore(stones, dead, 8, 6, 3.5, scorer.Options{ScoreFalseEyes: true})
	require.NoError(t, err)
	assert.Equal(t, float64(13), withCaptures[board.Black])
	assert.Equal(t, float64(13.5), withCaptures[board.White])

	area, err := scorer.FinalAreaScore(stones, dead, 3.5)
	require.NoError(t, err)
	assert.Equal(t, float64(21), area[board.Black])
	assert.Equal(t, float64(25.5), area[board.White])
}

// namedScenarioBoard pairs one of goscorer.py's named snapshot-test boards
// with its stone grid, translated from the original's stonestr legend
// (x/o lowercase = living black/white, b/w = marked-dead black/white).
type namedScenarioBoard struct {
	name   string
	stones [][]board.Color
	dead   [][]bool
}

// These three boards are the literal fixtures behind goscorer.py's
// test_basic_sekis, test_double_ko_death, and test_false_eyes_chain.
// Unlike test_final_scoring, those tests assert against
// ./expected_test_output snapshot files that aren't part of this
// retrieval pack, so there is no ground truth available here to check
// exact territory/seki classification against. Rather than invent
// expected output we can't verify, these are smoke tests: the pipeline
// must run to completion over each named shape without error and without
// violating the scoring grid's basic structural invariants (every point's
// classification fields are mutually consistent, and the grid shape
// matches the board). Full behavioral coverage of these shapes would
// require transcribing the Python reference engine's own output, which
// is future work, not something to fabricate here.
func namedScenarioBoards() []namedScenarioBoard {
	const E, B, W = board.Empty, board.Black, board.White

	basicSekisDead := emptyDead(5, 17)
	basicSekisDead[1][7] = true
	basicSekisDead[4][5] = true

	doubleKoDeathDead := emptyDead(5, 17)
	doubleKoDeathDead[3][15] = true
	doubleKoDeathDead[4][14] = true
	doubleKoDeathDead[4][16] = true

	return []namedScenarioBoard{
		{
			// goscorer.py test_basic_sekis
			name: "basic_sekis",
			stones: [][]board.Color{
				{E, B, E, W, E, E, E, E, E, E, E, E, E, B, E, B, E},
				{W, B, E, W, E, E, B, W, B, E, E, B, B, E, E, W, W},
				{W, B, E, W, E, W, E, B, B, E, B, E, E, W, W, W, E},
				{W, B, E, W, E, E, W, W, W, E, E, B, B, W, E, W, B},
				{E, B, E, W, E, B, E, E, E, E, E, E, E, W, B, B, E},
			},
			dead: basicSekisDead,
		},
		{
			// goscorer.py test_double_ko_death
			name: "double_ko_death",
			stones: [][]board.Color{
				{E, W, E, W, E, E, E, E, E, E, E, E, E, W, E, W, E},
				{B, B, E, W, E, E, E, E, E, E, E, E, E, W, E, B, B},
				{E, B, B, W, E, W, E, E, E, E, E, W, E, W, B, B, E},
				{B, W, B, B, W, E, E, E, E, E, E, E, W, B, B, W, B},
				{W, E, W, B, W, E, E, E, E, E, E, E, W, B, W, E, W},
			},
			dead: doubleKoDeathDead,
		},
		{
			// goscorer.py test_false_eyes_chain
			name: "false_eyes_chain",
			stones: [][]board.Color{
				{E, E, E, E, E, E, B, B, E},
				{E, E, E, E, E, E, W, W, B},
				{E, E, E, E, W, W, E, B, B},
				{W, W, W, W, W, E, W, B, E},
				{E, E, W, E, W, W, W, W, B},
				{W, W, W, E, E, E, W, B, E},
				{E, E, E, E, E, E, W, B, B},
				{E, E, E, E, E, E, E, B, E},
			},
			dead: emptyDead(8, 9),
		},
	}
}

func TestNamedScenarioBoardsScoreWithoutError(t *testing.T) {
	for _, scen := range namedScenarioBoards() {
		t.Run(scen.name, func(t *testing.T) {
			scoring, err := scorer.TerritoryScoring(scen.stones, scen.dead, scorer.Options{})
			require.NoError(t, err)

			height := len(scen.stones)
			width := len(scen.stones[0])
			require.Len(t, scoring, height)
			for y, row := range scoring {
				require.Len(t, row, width)
				for x, loc := range row {
					if loc.IsDame {
						assert.Equal(t, board.Empty, loc.BelongsToSekiGroup, "dame point (%d,%d) can't also be a seki group member", y, x)
						assert.False(t, loc.IsFalseEye, "dame point (%d,%d) can't be a false eye: false eyes only exist inside a region", y, x)
						assert.False(t, loc.IsUnscorableFalseEye, "dame point (%d,%d) can't be an unscorable false eye: false eyes only exist inside a region", y, x)
					}
					assert.GreaterOrEqual(t, loc.EyeValue, 0)
					assert.LessOrEqual(t, loc.EyeValue, 2)
				}
			}

			_, err = scorer.AreaScoring(scen.stones, scen.dead)
			require.NoError(t, err)
		})
	}
}
