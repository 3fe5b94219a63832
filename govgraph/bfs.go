package govgraph

import "errors"

// ErrStartVertexNotFound is returned when BFS is asked to start from a
// vertex the graph doesn't contain.
var ErrStartVertexNotFound = errors.New("govgraph: start vertex not found")

// Option configures a BFS run.
type Option func(*options)

type options struct {
	filterNeighbor func(curr, neighbor string) bool
	onVisit        func(id string)
}

// FilterNeighbor skips an edge curr->neighbor when fn returns false.
func FilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *options) { o.filterNeighbor = fn }
}

// OnVisit calls fn once for every vertex BFS visits, in visit order.
func OnVisit(fn func(id string)) Option {
	return func(o *options) { o.onVisit = fn }
}

// BFS explores g breadth-first from startID, returning the set of
// visited vertex IDs (including startID).
func BFS(g *Graph, startID string, opts ...Option) (map[string]bool, error) {
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	o := options{
		filterNeighbor: func(string, string) bool { return true },
		onVisit:        func(string) {},
	}
	for _, opt := range opts {
		opt(&o)
	}

	visited := map[string]bool{startID: true}
	queue := []string{startID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		o.onVisit(id)

		for _, n := range g.Neighbors(id) {
			if visited[n] || !o.filterNeighbor(id, n) {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}

	return visited, nil
}
