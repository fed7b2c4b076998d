// SPDX-License-Identifier: MIT

package routing

import (
	"container/heap"
	"math"
)

// dijkstraAll runs one single-source search per node and returns the tables
// plus the total number of successful relaxations.
//
// Each search uses the lazy decrease-key strategy: improved distances are
// pushed again and stale heap entries are skipped once their node is settled.
// Instead of predecessors it records the first hop out of the source, which
// is what a routing table needs.
//
// Complexity per source: O(n² log n) on the dense matrix.
func dijkstraAll(cost []float64, n int) ([]*Table, int) {
	tables := make([]*Table, n)
	var total int
	for s := 0; s < n; s++ {
		var u int
		tables[s], u = dijkstraFrom(cost, n, s)
		total += u
	}

	return tables, total
}

func dijkstraFrom(cost []float64, n, src int) (*Table, int) {
	t := newTable(src, n)
	dist, hop := t.Distance, t.NextHop
	settled := make([]bool, n)

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: src, dist: 0})

	var (
		u, v    int
		w, cand float64
		updates int
	)
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u = item.id
		if settled[u] {
			continue // stale entry
		}
		settled[u] = true

		base := u * n
		for v = 0; v < n; v++ {
			if v == u || settled[v] {
				continue
			}
			w = cost[base+v]
			if math.IsInf(w, 1) {
				continue
			}
			cand = dist[u] + w
			if cand >= dist[v] {
				continue
			}
			dist[v] = cand
			if u == src {
				hop[v] = v // direct link
			} else {
				hop[v] = hop[u]
			}
			updates++
			heap.Push(&pq, &nodeItem{id: v, dist: cand})
		}
	}

	return t, updates
}

// nodeItem is a heap entry: a node and its tentative distance.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, ties broken by id so the
// settle order is deterministic.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
