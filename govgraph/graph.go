package govgraph

import "errors"

// ErrEmptyVertexID is returned when a vertex operation is given an empty ID.
var ErrEmptyVertexID = errors.New("govgraph: vertex ID is empty")

// Graph is an undirected, unweighted adjacency-list graph. Unlike the
// teacher's core.Graph it carries no locks: every caller in this
// repository builds one, queries it, and discards it within a single
// goroutine.
type Graph struct {
	vertices  map[string]bool
	adjacency map[string]map[string]bool
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		vertices:  map[string]bool{},
		adjacency: map[string]map[string]bool{},
	}
}

// AddVertex inserts a vertex if missing. Idempotent.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if g.vertices[id] {
		return nil
	}
	g.vertices[id] = true
	g.adjacency[id] = map[string]bool{}
	return nil
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id string) bool {
	return g.vertices[id]
}

// AddEdge inserts an undirected edge between from and to, creating
// either endpoint that doesn't already exist.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}
	g.adjacency[from][to] = true
	g.adjacency[to][from] = true
	return nil
}

// Neighbors returns the vertex IDs adjacent to id, or nil if id is absent.
func (g *Graph) Neighbors(id string) []string {
	adj := g.adjacency[id]
	out := make([]string, 0, len(adj))
	for n := range adj {
		out = append(out, n)
	}
	return out
}
