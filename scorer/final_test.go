package scorer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/goscorer/board"
	"github.com/katalvlaran/goscorer/scorer"
)

func TestFinalTerritoryScoreAddsCapturesAndKomi(t *testing.T) {
	const E, B = board.Empty, board.Black
	stones := [][]board.Color{
		{B, B, B},
		{B, E, B},
		{B, B, B},
	}
	result, err := scorer.FinalTerritoryScore(stones, emptyDead(3, 3), 2, 1, 0.5, scorer.Options{})
	require.NoError(t, err)

	assert.Equal(t, float64(2), result[board.Black])
	assert.Equal(t, float64(1.5), result[board.White])
}

func TestFinalTerritoryScoreCountsDeadStonesForOpponent(t *testing.T) {
	const E, B, W = board.Empty, board.Black, board.White
	stones := [][]board.Color{
		{B, B, B},
		{B, W, B},
		{B, B, B},
	}
	dead := emptyDead(3, 3)
	dead[1][1] = true

	result, err := scorer.FinalTerritoryScore(stones, dead, 0, 0, 0, scorer.Options{})
	require.NoError(t, err)
	assert.Equal(t, float64(1), result[board.Black])
	assert.Equal(t, float64(0), result[board.White])
}

func TestFinalAreaScoreAddsKomi(t *testing.T) {
	const E, B = board.Empty, board.Black
	stones := [][]board.Color{
		{B, B, B},
		{B, E, B},
		{B, B, B},
	}
	result, err := scorer.FinalAreaScore(stones, emptyDead(3, 3), 6.5)
	require.NoError(t, err)

	assert.Equal(t, float64(9), result[board.Black])
	assert.Equal(t, float64(6.5), result[board.White])
}
