package graph

import "github.com/cographio/cograph/internal/models"

// Build constructs the co-occurrence graph from validated records.
//
// One node is created per distinct (day, area) identity; repeated
// observations of the same identity collapse onto the first-seen node.
// Within each day the member nodes are fully pairwise connected, so every
// day group forms a clique. Edges are never created across days.
//
// An empty record set yields an empty graph. Record order does not affect
// the node or edge sets, only the internal index assignment.
func Build(records []models.Record) *Graph {
	g := New()

	// day -> member node indices, in first-seen order.
	days := make(map[string][]int)
	order := make([]string, 0)

	for _, rec := range records {
		id := NodeID{Day: rec.Day, Area: rec.Area}

		before := g.NodeCount()
		i := g.addNode(id)
		if g.NodeCount() == before {
			// Duplicate identity; already a member of its day group.
			continue
		}

		day := id.Day.Format(models.DayLayout)
		if _, ok := days[day]; !ok {
			order = append(order, day)
		}

		days[day] = append(days[day], i)
	}

	// Clique per day. The addEdge duplicate guard keeps multiplicity at one
	// even if a pair were ever revisited.
	for _, day := range order {
		members := days[day]
		for x := 0; x < len(members); x++ {
			for y := x + 1; y < len(members); y++ {
				g.addEdge(members[x], members[y])
			}
		}
	}

	return g
}
