// SPDX-License-Identifier: MIT
// Package: routing
//
// Purpose:
//   - Dense all-pairs alternative to the relaxation loop, with next-hop tracking.
//   - Same end state for distances; next hops may differ on ties.
//
// Contract:
//   - cost is a row-major n×n snapshot; +Inf means "no link"; diagonal ignored.

package routing

import "math"

// floydWarshall returns converged tables and the number of improvements made.
// Loop order is fixed (k → i → j) for deterministic accumulation.
// Time: O(n³); extra space: O(n²) for the result tables.
func floydWarshall(cost []float64, n int) ([]*Table, int) {
	tables := make([]*Table, n)

	var (
		k, i, j    int
		ik, kj, ij float64
		cand       float64
		updates    int
	)

	// Initial distances are the direct links, exactly as in Engine.Init.
	for i = 0; i < n; i++ {
		t := newTable(i, n)
		for j = 0; j < n; j++ {
			if j != i && !math.IsInf(cost[i*n+j], 1) {
				t.Distance[j] = cost[i*n+j]
				t.NextHop[j] = j
			}
		}
		tables[i] = t
	}

	for k = 0; k < n; k++ { // intermediate
		dk := tables[k].Distance
		for i = 0; i < n; i++ { // source
			di, hi := tables[i].Distance, tables[i].NextHop
			ik = di[k]
			if math.IsInf(ik, 1) {
				continue // i cannot reach k, nothing improves via k
			}
			for j = 0; j < n; j++ { // destination
				kj = dk[j]
				if math.IsInf(kj, 1) {
					continue
				}
				ij = di[j]
				cand = ik + kj
				if cand < ij { // strict improvement only
					di[j] = cand
					hi[j] = hi[k]
					updates++
				}
			}
		}
	}

	return tables, updates
}
