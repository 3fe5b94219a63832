package connblock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/goscorer/board"
	"github.com/katalvlaran/goscorer/connblock"
)

func mustBoard(t *testing.T, stones [][]board.Color) *board.Board {
	t.Helper()
	dead := make([][]bool, len(stones))
	for y := range dead {
		dead[y] = make([]bool, len(stones[y]))
	}
	b, err := board.New(stones, dead)
	require.NoError(t, err)
	return b
}

func TestMarkFirstPatternMatches(t *testing.T) {
	const E, B = board.Empty, board.Black
	b := mustBoard(t, [][]board.Color{
		{B, B},
		{E, E},
		{B, E},
	})

	out := connblock.Mark(b)
	assert.Equal(t, board.Black, out[1][0])
}

func TestMarkNoMatchOnEmptyBoard(t *testing.T) {
	const E = board.Empty
	b := mustBoard(t, [][]board.Color{
		{E, E},
		{E, E},
		{E, E},
	})

	out := connblock.Mark(b)
	for _, row := range out {
		for _, c := range row {
			assert.Equal(t, board.Empty, c)
		}
	}
}

func TestMarkDeadOpponentCountsAsEmptyForE(t *testing.T) {
	const E, B, W = board.Empty, board.Black, board.White
	stones := [][]board.Color{
		{B, B},
		{E, E},
		{B, W}, // the opponent stone at (2,1) is dead, matching the 'e' glyph
	}
	dead := [][]bool{
		{false, false},
		{false, false},
		{false, true},
	}
	b, err := board.New(stones, dead)
	require.NoError(t, err)

	out := connblock.Mark(b)
	assert.Equal(t, board.Black, out[1][0])
}

func TestMarkDoesNotTargetOccupiedPoint(t *testing.T) {
	const E, B = board.Empty, board.Black
	// Same as the matching case, but the would-be '@' target is occupied,
	// so that point is never marked (an '@' only ever lands on an empty
	// point).
	b := mustBoard(t, [][]board.Color{
		{B, B},
		{B, E},
		{B, E},
	})

	out := connblock.Mark(b)
	assert.Equal(t, board.Empty, out[1][0])
}
