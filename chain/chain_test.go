package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/goscorer/board"
	"github.com/katalvlaran/goscorer/chain"
	"github.com/katalvlaran/goscorer/connblock"
	"github.com/katalvlaran/goscorer/reach"
	"github.com/katalvlaran/goscorer/region"
)

func decomposeAll(t *testing.T, stones [][]board.Color, dead [][]bool) (*board.Board, [][]region.ID, []*region.Info, [][]chain.ID, []*chain.Info) {
	t.Helper()
	b, err := board.New(stones, dead)
	require.NoError(t, err)
	blocks := connblock.Mark(b)
	rb, rw := reach.Blocked(b, blocks)
	regionIDs, regionInfos := region.Decompose(b, blocks, rb, rw)
	chainIDs, chainInfos := chain.Decompose(b, regionIDs)
	return b, regionIDs, regionInfos, chainIDs, chainInfos
}

func TestDecomposeGroupsOneChain(t *testing.T) {
	const E, B = board.Empty, board.Black
	stones := [][]board.Color{
		{B, B},
		{E, E},
	}
	dead := [][]bool{{false, false}, {false, false}}
	_, _, _, chainIDs, infos := decomposeAll(t, stones, dead)

	assert.Equal(t, chainIDs[0][0], chainIDs[0][1], "contiguous same-color stones form one chain")
	id := chainIDs[0][0]
	assert.Equal(t, board.Black, infos[id].Color)
	assert.Len(t, infos[id].Points, 2)
}

func TestDecomposeSeparatesDeadFromLiving(t *testing.T) {
	const E, B = board.Empty, board.Black
	stones := [][]board.Color{{B, B}}
	dead := [][]bool{{false, true}}
	_, _, _, chainIDs, infos := decomposeAll(t, stones, dead)

	assert.NotEqual(t, chainIDs[0][0], chainIDs[0][1], "same color but different liveness must be different chains")
	assert.False(t, infos[chainIDs[0][0]].IsMarkedDead)
	assert.True(t, infos[chainIDs[0][1]].IsMarkedDead)
}

func TestDecomposeLibertiesAndNeighbors(t *testing.T) {
	const E, B, W = board.Empty, board.Black, board.White
	stones := [][]board.Color{{B, E, W}}
	dead := [][]bool{{false, false, false}}
	_, _, _, chainIDs, infos := decomposeAll(t, stones, dead)

	blackID := chainIDs[0][0]
	emptyID := chainIDs[0][1]
	whiteID := chainIDs[0][2]

	assert.True(t, infos[blackID].Liberties[board.Point{Y: 0, X: 1}])
	assert.True(t, infos[blackID].Neighbors[emptyID])
	assert.True(t, infos[emptyID].Neighbors[whiteID])
}
