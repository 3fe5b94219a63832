// Package govgraph is a small, single-purpose descendant of the wider
// graph/BFS machinery this repository's stack provides: a vertex/edge
// catalog (NewGraph, AddVertex, AddEdge, HasVertex, Neighbors) plus a
// functional-option BFS (FilterNeighbor, OnVisit).
//
// It exists for exactly one caller, scorer.AreaScoring: area scoring is
// "just" multi-source reachability over a graph built from the board, so
// it is the one place in this repository where reaching for a generic
// graph and BFS is the natural choice instead of a bespoke board flood.
// Every other pass in the pipeline has branchy, pass-specific bookkeeping
// that a generic graph representation would only get in the way of.
package govgraph
