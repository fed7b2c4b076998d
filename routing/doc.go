// Package routing computes distance-vector routing tables for every node of a
// static topology by iterative Bellman-Ford relaxation.
//
// Overview:
//
//   - Each node owns a Table: Distance[j] (best known cost to j) and NextHop[j]
//     (the neighbour to forward through).
//   - Init seeds tables from direct links only.
//   - A pass visits every node i, destination j and intermediate k and applies
//     distance[i][k] + cost(k, j) when it strictly improves distance[i][j],
//     inheriting nextHop[i][k].
//   - Passes repeat until one changes nothing: the fixed point.
//
// This is a centralised, synchronous simulation of what real routers do by
// exchanging vectors; there is no message timing and no partial information.
//
// Complexity (BellmanFord):
//
//   - Time:  O(P · N³) with P ≤ N passes for valid input.
//   - Space: O(N²) for the tables plus an O(N²) cost snapshot.
//
// Options:
//
//   - WithAlgorithm:   BellmanFord (default), FloydWarshall, Dijkstra.
//   - WithMaxPasses:   safety cap; default N²+1. Exceeding it is ErrNotConverged.
//   - WithWorkers:     relax node tables concurrently within a pass.
//   - WithContext:     cancellation between passes.
//   - WithOnPass:      per-pass hook (pass number, updates).
//   - WithLogger:      *zap.Logger for Debug progress.
//
// Tie-breaking:
//
//	When two paths cost the same, the next hop kept is whichever the fixed
//	i → j → k order finds first. Treat it as unspecified; costs are exact.
//
// Example usage:
//
//	res, err := routing.Compute(topology.Example())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, _ := res.Distance(0, 2)   // 3
//	h, _ := res.NextHop(0, 2)    // 3
package routing
