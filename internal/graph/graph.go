// Package graph provides the in-memory co-occurrence graph: an undirected,
// unweighted graph whose nodes are (day, area) identities and whose edges
// connect areas observed on the same day.
//
// A Graph is built once by Build and never mutated afterwards; every analysis
// in internal/analysis reads it concurrently without locking.
package graph

import (
	"sort"
	"time"

	"github.com/cographio/cograph/internal/models"
)

// NodeID is the unique identity of a graph node: one area on one calendar day.
// The same area on a different day is a distinct node.
type NodeID struct {
	Day  time.Time
	Area string
}

// String renders the identity as "2006-01-02/area".
func (id NodeID) String() string {
	return id.Day.Format(models.DayLayout) + "/" + id.Area
}

// nodeKey is the comparable form of NodeID used for identity lookups.
// Formatting the day avoids time.Time equality pitfalls (monotonic clock,
// location pointers) as a map key.
type nodeKey struct {
	day  string
	area string
}

func (id NodeID) key() nodeKey {
	return nodeKey{day: id.Day.Format(models.DayLayout), area: id.Area}
}

// Graph is an undirected, unweighted graph over NodeID identities.
// Nodes are addressed by dense indices in [0, NodeCount).
type Graph struct {
	labels []NodeID
	index  map[nodeKey]int
	adj    []map[int]struct{}
	edges  int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{index: make(map[nodeKey]int)}
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.labels) }

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Label returns the identity of node i. Panics if i is out of range, which is
// an invariant violation rather than a runtime condition.
func (g *Graph) Label(i int) NodeID { return g.labels[i] }

// Lookup returns the index of the node with the given identity.
func (g *Graph) Lookup(id NodeID) (int, bool) {
	i, ok := g.index[id.key()]

	return i, ok
}

// Degree returns the number of neighbors of node i.
func (g *Graph) Degree(i int) int { return len(g.adj[i]) }

// Neighbors returns the neighbor indices of node i in ascending order.
// The slice is freshly allocated on each call.
func (g *Graph) Neighbors(i int) []int {
	out := make([]int, 0, len(g.adj[i]))
	for n := range g.adj[i] {
		out = append(out, n)
	}

	sort.Ints(out)

	return out
}

// HasEdge reports whether an edge exists between nodes a and b.
func (g *Graph) HasEdge(a, b int) bool {
	_, ok := g.adj[a][b]

	return ok
}

// addNode inserts a node for id if absent and returns its index.
func (g *Graph) addNode(id NodeID) int {
	k := id.key()
	if i, ok := g.index[k]; ok {
		return i
	}

	i := len(g.labels)
	g.labels = append(g.labels, id)
	g.adj = append(g.adj, make(map[int]struct{}))
	g.index[k] = i

	return i
}

// addEdge connects two distinct existing nodes, ignoring self edges and
// duplicates so that edge multiplicity never exceeds one.
func (g *Graph) addEdge(a, b int) {
	if a == b {
		return
	}

	if _, ok := g.adj[a][b]; ok {
		return
	}

	g.adj[a][b] = struct{}{}
	g.adj[b][a] = struct{}{}
	g.edges++
}
