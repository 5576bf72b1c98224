package analysis

import (
	"sort"

	"github.com/cographio/cograph/internal/models"
)

// Engine runs the read-only metric queries over a graph. Workers bounds the
// parallelism of the all-pairs traversals; values below 1 mean sequential.
// Results are independent of the worker count.
type Engine struct {
	Workers int
}

// DegreeDistribution returns a map from degree value to the number of nodes
// with that degree. Isolated nodes land in the degree-0 bucket.
func (e Engine) DegreeDistribution(g Graph) map[int]int {
	counts := make(map[int]int)
	for i := 0; i < g.NodeCount(); i++ {
		counts[g.Degree(i)]++
	}

	return counts
}

// AvgShortestPath returns the mean hop distance over all ordered pairs of
// mutually reachable nodes, self pairs at distance 0 included. Pairs in
// different components contribute to neither the sum nor the denominator.
// The second return is false when the metric is undefined (fewer than two
// nodes).
func (e Engine) AvgShortestPath(g Graph) (float64, bool) {
	if g.NodeCount() <= 1 {
		return 0, false
	}

	var total, pairs uint64

	for _, src := range e.perSource(g) {
		total += uint64(src.sum)
		pairs += uint64(src.reached)
	}

	return float64(total) / float64(pairs), true
}

// ClosenessTopN ranks every node by closeness centrality and returns the
// top n labeled scores. A node's score is (V-1) divided by the sum of its
// distances to all reachable nodes when that sum is positive, and exactly 0
// for isolated nodes. Ties break by day then area ascending, so the ranking
// is deterministic regardless of build order. Fewer than n entries are
// returned when the graph is smaller than n.
func (e Engine) ClosenessTopN(g Graph, n int) []models.ClosenessEntry {
	if n <= 0 || g.NodeCount() == 0 {
		return []models.ClosenessEntry{}
	}

	stats := e.perSource(g)
	entries := make([]models.ClosenessEntry, g.NodeCount())

	for i := 0; i < g.NodeCount(); i++ {
		score := 0.0
		if stats[i].sum > 0 {
			score = float64(g.NodeCount()-1) / float64(stats[i].sum)
		}

		id := g.Label(i)
		entries[i] = models.ClosenessEntry{
			Day:   id.Day.Format(models.DayLayout),
			Area:  id.Area,
			Score: score,
		}
	}

	sort.Slice(entries, func(a, b int) bool {
		if entries[a].Score != entries[b].Score {
			return entries[a].Score > entries[b].Score
		}
		if entries[a].Day != entries[b].Day {
			return entries[a].Day < entries[b].Day
		}

		return entries[a].Area < entries[b].Area
	})

	if n > len(entries) {
		n = len(entries)
	}

	return entries[:n]
}

// ComponentCount returns the number of maximal sets of mutually reachable
// nodes. An isolated node is its own component.
func (e Engine) ComponentCount(g Graph) int {
	visited := make([]bool, g.NodeCount())
	count := 0

	for i := 0; i < g.NodeCount(); i++ {
		if visited[i] {
			continue
		}

		count++
		for node := range Distances(g, i) {
			visited[node] = true
		}
	}

	return count
}
