package analysis_test

import (
	"testing"
	"time"

	"github.com/cographio/cograph/internal/analysis"
	"github.com/cographio/cograph/internal/graph"
	"github.com/cographio/cograph/internal/models"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()

	d, err := time.Parse(models.DayLayout, s)
	if err != nil {
		t.Fatalf("parse day %q: %v", s, err)
	}

	return d
}

func rec(t *testing.T, d, area string) models.Record {
	t.Helper()

	return models.Record{Day: day(t, d), Area: area}
}

// stubGraph is a hand-built adjacency graph for shapes the day-clique
// builder cannot produce (chains, arbitrary sparse topologies).
type stubGraph struct {
	labels []graph.NodeID
	adj    [][]int
}

func (s *stubGraph) NodeCount() int        { return len(s.adj) }
func (s *stubGraph) Degree(i int) int      { return len(s.adj[i]) }
func (s *stubGraph) Neighbors(i int) []int { return s.adj[i] }

func (s *stubGraph) Label(i int) graph.NodeID {
	if i < len(s.labels) {
		return s.labels[i]
	}

	return graph.NodeID{Area: string(rune('A' + i))}
}

// newStub builds an undirected stub over n nodes from edge pairs.
func newStub(n int, edges ...[2]int) *stubGraph {
	s := &stubGraph{adj: make([][]int, n)}
	for _, e := range edges {
		s.adj[e[0]] = append(s.adj[e[0]], e[1])
		s.adj[e[1]] = append(s.adj[e[1]], e[0])
	}

	return s
}

func TestDistancesChain(t *testing.T) {
	t.Parallel()

	// A-B-C chain: distances from A are exactly {A:0, B:1, C:2}.
	g := newStub(3, [2]int{0, 1}, [2]int{1, 2})

	dist := analysis.Distances(g, 0)

	want := map[int]int{0: 0, 1: 1, 2: 2}
	if len(dist) != len(want) {
		t.Fatalf("len(dist) = %d, want %d", len(dist), len(want))
	}
	for node, d := range want {
		if dist[node] != d {
			t.Errorf("dist[%d] = %d, want %d", node, dist[node], d)
		}
	}
}

func TestDistancesExcludesUnreachable(t *testing.T) {
	t.Parallel()

	// Edge 0-1 plus isolated node 2.
	g := newStub(3, [2]int{0, 1})

	dist := analysis.Distances(g, 0)

	if len(dist) != 2 {
		t.Fatalf("len(dist) = %d, want 2", len(dist))
	}
	if _, ok := dist[2]; ok {
		t.Error("unreachable node present in distance map")
	}
}

func TestDistancesFromIsolatedNode(t *testing.T) {
	t.Parallel()

	g := newStub(2)

	dist := analysis.Distances(g, 1)

	if len(dist) != 1 || dist[1] != 0 {
		t.Errorf("dist = %v, want {1:0}", dist)
	}
}

func TestDistancesOnBuiltGraph(t *testing.T) {
	t.Parallel()

	// Day cliques are disjoint per day, so a cross-day node is unreachable.
	g := graph.Build([]models.Record{
		rec(t, "2025-04-01", "A"),
		rec(t, "2025-04-01", "B"),
		rec(t, "2025-04-02", "A"),
	})

	start, ok := g.Lookup(graph.NodeID{Day: day(t, "2025-04-01"), Area: "A"})
	if !ok {
		t.Fatal("Lookup(2025-04-01/A) not found")
	}

	dist := analysis.Distances(g, start)

	if len(dist) != 2 {
		t.Fatalf("len(dist) = %d, want 2", len(dist))
	}

	other, _ := g.Lookup(graph.NodeID{Day: day(t, "2025-04-02"), Area: "A"})
	if _, ok := dist[other]; ok {
		t.Error("node from another day reachable, want unreachable")
	}
}
