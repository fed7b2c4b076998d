// SPDX-License-Identifier: MIT

package routing

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dvroute/topology"
)

// verifyTol is the relative slack Verify allows when comparing sums of
// non-integer costs accumulated in different orders.
const verifyTol = 1e-9

// Result is the converged set of routing tables, one per node in node order.
type Result struct {
	Algorithm Algorithm
	Passes    int // relaxation passes, the final quiet one included
	Updates   int // total table improvements

	top    *topology.Topology
	cost   []float64
	tables []*Table
}

// Topology returns the network the tables were computed for.
func (r *Result) Topology() *topology.Topology { return r.top }

// Size returns the number of nodes.
func (r *Result) Size() int { return len(r.tables) }

// Table returns a copy of node i's table.
func (r *Result) Table(i int) (*Table, error) {
	if i < 0 || i >= len(r.tables) {
		return nil, fmt.Errorf("Table(%d) with N=%d: %w", i, len(r.tables), ErrOutOfRange)
	}

	return r.tables[i].Clone(), nil
}

// Tables returns copies of all tables in node order.
func (r *Result) Tables() []*Table { return cloneTables(r.tables) }

// Distance returns the converged cost from i to j (topology.Unreachable if none).
func (r *Result) Distance(i, j int) (float64, error) {
	if err := r.check(i, j); err != nil {
		return 0, err
	}

	return r.tables[i].Distance[j], nil
}

// NextHop returns the neighbour i forwards through to reach j (NoHop if none).
func (r *Result) NextHop(i, j int) (int, error) {
	if err := r.check(i, j); err != nil {
		return NoHop, err
	}

	return r.tables[i].NextHop[j], nil
}

func (r *Result) check(i, j int) error {
	n := len(r.tables)
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("(%d,%d) with N=%d: %w", i, j, n, ErrOutOfRange)
	}

	return nil
}

// Path follows next hops from src and returns the node sequence src … dst.
// Each hop is taken from the table of the node currently holding the packet,
// which is how forwarding works hop by hop.
func (r *Result) Path(src, dst int) ([]int, error) {
	if err := r.check(src, dst); err != nil {
		return nil, err
	}
	if !r.tables[src].Reachable(dst) {
		return nil, fmt.Errorf("%d→%d: %w", src, dst, ErrUnreachable)
	}

	path := []int{src}
	seen := make([]bool, len(r.tables))
	seen[src] = true
	for cur := src; cur != dst; {
		next := r.tables[cur].NextHop[dst]
		if next == NoHop {
			return nil, fmt.Errorf("%d→%d: node %d has no route: %w", src, dst, cur, ErrUnreachable)
		}
		if seen[next] {
			return nil, fmt.Errorf("%d→%d: revisits node %d: %w", src, dst, next, ErrRoutingLoop)
		}
		seen[next] = true
		path = append(path, next)
		cur = next
	}

	return path, nil
}

// Relax runs one more relaxation pass over the converged tables and returns
// the number of updates. On a fixed point this is always 0.
func (r *Result) Relax() int {
	n := len(r.tables)
	var u int
	for i := 0; i < n; i++ {
		u += relaxTable(r.cost, n, r.tables[i])
	}

	return u
}

// Verify checks the routing invariants of the converged tables:
//   - distance[i][i] == 0 and nextHop[i][i] == i;
//   - unreachable entries carry NoHop;
//   - a finite entry's next hop h is a direct neighbour of i and
//     distance[i][j] == cost(i,h) + distance[h][j];
//   - no link improves any entry (fixed point).
//
// The first violation is returned wrapped in ErrInconsistent.
func (r *Result) Verify() error {
	n := len(r.tables)
	var i, j, h int
	for i = 0; i < n; i++ {
		t := r.tables[i]
		if t.Distance[i] != 0 || t.NextHop[i] != i {
			return fmt.Errorf("%w: node %d self entry is (%v, %d)", ErrInconsistent, i, t.Distance[i], t.NextHop[i])
		}
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			d := t.Distance[j]
			h = t.NextHop[j]
			if topology.IsUnreachable(d) {
				if h != NoHop {
					return fmt.Errorf("%w: %d→%d unreachable but next hop %d", ErrInconsistent, i, j, h)
				}
				continue
			}
			if h < 0 || h >= n || h == i || math.IsInf(r.cost[i*n+h], 1) {
				return fmt.Errorf("%w: %d→%d next hop %d is not a neighbour", ErrInconsistent, i, j, h)
			}
			if via := r.cost[i*n+h] + r.tables[h].Distance[j]; !nearlyEqual(d, via) {
				return fmt.Errorf("%w: %d→%d costs %v but via %d costs %v", ErrInconsistent, i, j, d, h, via)
			}
		}
		for h = 0; h < n; h++ {
			c := r.cost[i*n+h]
			if h == i || math.IsInf(c, 1) {
				continue
			}
			for j = 0; j < n; j++ {
				if via := c + r.tables[h].Distance[j]; via < t.Distance[j] && !nearlyEqual(via, t.Distance[j]) {
					return fmt.Errorf("%w: %d→%d improvable via %d (%v < %v)", ErrInconsistent, i, j, h, via, t.Distance[j])
				}
			}
		}
	}

	return nil
}

func nearlyEqual(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	return math.Abs(a-b) <= verifyTol*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
