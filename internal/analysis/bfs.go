// Package analysis computes structural network metrics over an immutable
// co-occurrence graph: BFS hop distances, degree distribution, all-pairs
// average shortest-path length, closeness centrality and connected
// components.
package analysis

import "github.com/cographio/cograph/internal/graph"

// Graph is the read-only view the analysis engine needs. *graph.Graph
// satisfies it; tests substitute hand-built adjacency stubs.
type Graph interface {
	NodeCount() int
	Degree(i int) int
	Neighbors(i int) []int
	Label(i int) graph.NodeID
}

// Compile-time check: the concrete graph store satisfies Graph.
var _ Graph = (*graph.Graph)(nil)

// Distances performs a breadth-first traversal from start and returns the
// minimum hop count to every reachable node, including start at distance 0.
// Unreachable nodes are absent from the map; absence is the sentinel.
//
// Nodes are marked visited at enqueue time, so each node is processed once
// and the first recorded distance is its true shortest-path length. O(V+E).
func Distances(g Graph, start int) map[int]int {
	dist := map[int]int{start: 0}
	queue := []int{start}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		d := dist[node]
		for _, nbr := range g.Neighbors(node) {
			if _, seen := dist[nbr]; !seen {
				dist[nbr] = d + 1
				queue = append(queue, nbr)
			}
		}
	}

	return dist
}
