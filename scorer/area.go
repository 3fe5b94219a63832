package scorer

import (
	"fmt"

	"github.com/katalvlaran/goscorer/board"
	"github.com/katalvlaran/goscorer/govgraph"
)

// rootVertexID names the synthetic root vertex wired to every living
// stone of one color in reachesFrom's overlay graph.
const rootVertexID = "$root"

// AreaScoring computes area scoring (stones plus surrounded territory):
// a point belongs to a color's area iff only that color's living stones
// can reach it without crossing a living stone of the other color.
//
// Unlike TerritoryScoring, this needs none of the pipeline's structural
// bookkeeping — it's exactly two multi-source breadth-first searches, so
// it's built over a small generic graph (package govgraph) instead of a
// bespoke flood.
//
// Complexity: O(Height*Width).
func AreaScoring(stones [][]board.Color, dead [][]bool) ([][]board.Color, error) {
	b, err := board.New(stones, dead)
	if err != nil {
		return nil, err
	}

	reachesBlack := reachesFrom(b, board.Black)
	reachesWhite := reachesFrom(b, board.White)

	scoring := make([][]board.Color, b.Height)
	for y := 0; y < b.Height; y++ {
		scoring[y] = make([]board.Color, b.Width)
		for x := 0; x < b.Width; x++ {
			id := vertexID(y, x)
			switch {
			case reachesBlack[id] && !reachesWhite[id]:
				scoring[y][x] = board.Black
			case reachesWhite[id] && !reachesBlack[id]:
				scoring[y][x] = board.White
			}
		}
	}

	return scoring, nil
}

// reachesFrom builds a board graph plus a synthetic root wired to every
// living stone of pla, then BFS's from that root, blocked from stepping
// onto a living enemy stone — a multi-source flood expressed as a
// single-source one.
func reachesFrom(b *board.Board, pla board.Color) map[string]bool {
	g := govgraph.NewGraph()
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			id := vertexID(y, x)
			if x+1 < b.Width {
				_ = g.AddEdge(id, vertexID(y, x+1))
			}
			if y+1 < b.Height {
				_ = g.AddEdge(id, vertexID(y+1, x))
			}
			if b.IsLivingColor(y, x, pla) {
				_ = g.AddEdge(rootVertexID, id)
			}
		}
	}
	if !g.HasVertex(rootVertexID) {
		return map[string]bool{}
	}

	opp := board.Opponent(pla)
	visited, err := govgraph.BFS(g, rootVertexID, govgraph.FilterNeighbor(func(_, neighbor string) bool {
		if neighbor == rootVertexID {
			return false
		}
		y, x := parseVertexID(neighbor)
		return !b.IsLivingColor(y, x, opp)
	}))
	if err != nil {
		return map[string]bool{}
	}
	delete(visited, rootVertexID)
	return visited
}

func vertexID(y, x int) string {
	return fmt.Sprintf("%d,%d", y, x)
}

func parseVertexID(id string) (y, x int) {
	fmt.Sscanf(id, "%d,%d", &y, &x)
	return
}
