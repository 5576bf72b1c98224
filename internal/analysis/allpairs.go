package analysis

import "golang.org/x/sync/errgroup"

// sourceStats aggregates one BFS run: the sum of distances to reachable
// nodes and how many nodes were reached (the source itself included).
type sourceStats struct {
	sum     int
	reached int
}

// perSource runs a BFS from every node, bounded by Workers, and returns the
// per-source aggregates indexed by node. Each goroutine reads the immutable
// graph and writes only its own slice slots, so merging by index is
// deterministic and lock-free.
func (e Engine) perSource(g Graph) []sourceStats {
	stats := make([]sourceStats, g.NodeCount())

	workers := e.Workers
	if workers < 1 {
		workers = 1
	}

	var eg errgroup.Group
	eg.SetLimit(workers)

	for i := 0; i < g.NodeCount(); i++ {
		i := i
		eg.Go(func() error {
			for _, d := range Distances(g, i) {
				stats[i].sum += d
				stats[i].reached++
			}

			return nil
		})
	}

	// Goroutines never return errors; Wait is only a join point.
	_ = eg.Wait()

	return stats
}
