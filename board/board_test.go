package board_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/goscorer/board"
)

func TestNewValidBoard(t *testing.T) {
	stones := [][]board.Color{
		{board.Empty, board.Black},
		{board.White, board.Empty},
	}
	dead := [][]bool{
		{false, false},
		{false, true},
	}
	b, err := board.New(stones, dead)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Height)
	assert.Equal(t, 2, b.Width)
	assert.True(t, b.IsLivingColor(0, 1, board.Black))
	assert.False(t, b.IsLivingColor(1, 1, board.White), "marked dead, not living")
}

func TestNewMutationIsolation(t *testing.T) {
	stones := [][]board.Color{{board.Black, board.White}}
	dead := [][]bool{{false, false}}
	b, err := board.New(stones, dead)
	require.NoError(t, err)

	stones[0][0] = board.White
	dead[0][0] = true

	assert.Equal(t, board.Black, b.Stones[0][0], "board must deep-copy stones")
	assert.False(t, b.Dead[0][0], "board must deep-copy dead")
}

func TestNewRejectsEmptyBoard(t *testing.T) {
	_, err := board.New(nil, nil)
	assert.ErrorIs(t, err, board.ErrEmptyBoard)

	_, err = board.New([][]board.Color{{}}, [][]bool{{}})
	assert.ErrorIs(t, err, board.ErrEmptyBoard)
}

func TestNewRejectsNonRectangularStones(t *testing.T) {
	stones := [][]board.Color{{board.Empty, board.Empty}, {board.Empty}}
	dead := [][]bool{{false, false}, {false, false}}
	_, err := board.New(stones, dead)
	assert.ErrorIs(t, err, board.ErrNonRectangularStones)
}

func TestNewRejectsInvalidColor(t *testing.T) {
	stones := [][]board.Color{{board.Color(7)}}
	dead := [][]bool{{false}}
	_, err := board.New(stones, dead)
	assert.ErrorIs(t, err, board.ErrInvalidColor)
}

func TestNewRejectsDeadSizeMismatch(t *testing.T) {
	stones := [][]board.Color{{board.Empty}}
	dead := [][]bool{}
	_, err := board.New(stones, dead)
	assert.ErrorIs(t, err, board.ErrDeadSizeMismatch)
}

func TestNewRejectsNonRectangularDead(t *testing.T) {
	stones := [][]board.Color{{board.Empty, board.Empty}}
	dead := [][]bool{{false}}
	_, err := board.New(stones, dead)
	assert.ErrorIs(t, err, board.ErrNonRectangularDead)
}

func TestInBoundsAndBorder(t *testing.T) {
	b, err := board.New([][]board.Color{{0, 0}, {0, 0}}, [][]bool{{false, false}, {false, false}})
	require.NoError(t, err)

	assert.True(t, b.InBounds(0, 0))
	assert.False(t, b.InBounds(-1, 0))
	assert.False(t, b.InBounds(2, 0))
	assert.True(t, b.IsOnBorder(0, 0))
	assert.True(t, b.IsOnBorder(1, 1))
}

func TestNeighbors4(t *testing.T) {
	b, err := board.New([][]board.Color{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, [][]bool{{false, false, false}, {false, false, false}, {false, false, false}})
	require.NoError(t, err)

	corners := b.Neighbors4(0, 0)
	assert.Len(t, corners, 2)

	center := b.Neighbors4(1, 1)
	assert.Len(t, center, 4)
}

func TestIsAdjacent(t *testing.T) {
	assert.True(t, board.IsAdjacent(board.Point{Y: 1, X: 1}, board.Point{Y: 1, X: 2}))
	assert.True(t, board.IsAdjacent(board.Point{Y: 1, X: 1}, board.Point{Y: 0, X: 1}))
	assert.False(t, board.IsAdjacent(board.Point{Y: 1, X: 1}, board.Point{Y: 2, X: 2}))
	assert.False(t, board.IsAdjacent(board.Point{Y: 1, X: 1}, board.Point{Y: 1, X: 1}))
}

func TestOpponent(t *testing.T) {
	assert.Equal(t, board.White, board.Opponent(board.Black))
	assert.Equal(t, board.Black, board.Opponent(board.White))
}

func TestInvariantPanicsOnFalse(t *testing.T) {
	assert.Panics(t, func() {
		board.Invariant(false, "unreachable %d", 1)
	})
	assert.NotPanics(t, func() {
		board.Invariant(true, "fine")
	})
}

func TestFloodFillRespectsAdmitAndPropagate(t *testing.T) {
	b, err := board.New(
		[][]board.Color{
			{board.Empty, board.Empty, board.Empty},
			{board.Empty, board.Black, board.Empty},
			{board.Empty, board.Empty, board.Empty},
		},
		[][]bool{{false, false, false}, {false, false, false}, {false, false, false}},
	)
	require.NoError(t, err)

	visited := board.NewBoolGrid(b.Height, b.Width)
	var visitedOrder []board.Point
	board.FloodFill(b, []board.Point{{Y: 0, X: 0}}, visited,
		func(p board.Point) bool { return b.Stones[p.Y][p.X] != board.Black },
		nil,
		func(p board.Point) { visitedOrder = append(visitedOrder, p) },
	)
	// The black stone at (1,1) must never be entered.
	assert.False(t, visited[1][1])
	assert.True(t, visited[0][0])
	assert.True(t, visited[2][2])
	assert.Len(t, visitedOrder, 8)

	// propagate=false stops expansion past the seed but still visits it.
	visited2 := board.NewBoolGrid(b.Height, b.Width)
	var count int
	board.FloodFill(b, []board.Point{{Y: 1, X: 0}}, visited2,
		func(board.Point) bool { return true },
		func(board.Point) bool { return false },
		func(board.Point) { count++ },
	)
	assert.Equal(t, 1, count)
	assert.True(t, visited2[1][0])
	assert.False(t, visited2[0][0])
}

func TestColorString(t *testing.T) {
	assert.Equal(t, ".", board.Empty.String())
	assert.Equal(t, "x", board.Black.String())
	assert.Equal(t, "o", board.White.String())
}

func TestWrappedErrorsCarryContext(t *testing.T) {
	_, err := board.New([][]board.Color{{0, 0}, {0}}, [][]bool{{false, false}, {false, false}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, board.ErrNonRectangularStones))
	assert.Contains(t, err.Error(), "row 1")
}
