package board

// FloodFill performs an iterative (explicit-stack) 4-connected flood over
// the board starting from seeds, using a visited grid owned by the caller
// (some passes reuse a result grid as the visited grid; others use a
// throwaway grid scoped to a single fill).
//
// For each point popped off the stack that is not yet visited: admit
// decides whether the point may be entered at all (e.g. "not a living
// opponent stone"); if admitted, the point is marked visited, visit is
// called, and — unless propagate returns false for that point — its
// on-board neighbors are pushed for further exploration. A false result
// from propagate lets a point be visited (and reported) without the fill
// spreading past it, which is how connection blockers stop reachability
// one step beyond themselves.
//
// Complexity: O(Height*Width) time and memory; never recurses, so depth is
// unbounded by the call stack.
func FloodFill(b *Board, seeds []Point, visited [][]bool, admit func(p Point) bool, propagate func(p Point) bool, visit func(p Point)) {
	stack := append([]Point(nil), seeds...)
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[p.Y][p.X] {
			continue
		}
		if !admit(p) {
			continue
		}
		visited[p.Y][p.X] = true
		if visit != nil {
			visit(p)
		}

		if propagate != nil && !propagate(p) {
			continue
		}
		for _, n := range b.Neighbors4(p.Y, p.X) {
			if !visited[n.Y][n.X] {
				stack = append(stack, n)
			}
		}
	}
}

// NewBoolGrid allocates a Height x Width grid of false, a convenience used
// throughout the pipeline for visited/marker grids.
func NewBoolGrid(height, width int) [][]bool {
	g := make([][]bool, height)
	for y := range g {
		g[y] = make([]bool, width)
	}
	return g
}

// NewColorGrid allocates a Height x Width grid filled with fill.
func NewColorGrid(height, width int, fill Color) [][]Color {
	g := make([][]Color, height)
	for y := range g {
		g[y] = make([]Color, width)
		for x := range g[y] {
			g[y][x] = fill
		}
	}
	return g
}

// NewIntGrid allocates a Height x Width grid of ints filled with fill.
func NewIntGrid(height, width, fill int) [][]int {
	g := make([][]int, height)
	for y := range g {
		g[y] = make([]int, width)
		for x := range g[y] {
			g[y][x] = fill
		}
	}
	return g
}
