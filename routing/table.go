// SPDX-License-Identifier: MIT

package routing

import (
	"fmt"

	"github.com/katalvlaran/dvroute/topology"
)

// Table is one node's routing state: a distance vector and a next-hop vector,
// both indexed by destination.
type Table struct {
	Node     int
	Distance []float64
	NextHop  []int
}

// newTable returns the pre-initialisation state of node i: everything
// unreachable except the node itself.
func newTable(i, n int) *Table {
	t := &Table{
		Node:     i,
		Distance: make([]float64, n),
		NextHop:  make([]int, n),
	}
	for j := 0; j < n; j++ {
		t.Distance[j] = topology.Unreachable
		t.NextHop[j] = NoHop
	}
	t.Distance[i] = 0
	t.NextHop[i] = i

	return t
}

// Size returns the number of destinations.
func (t *Table) Size() int { return len(t.Distance) }

// Reachable reports whether dst has a finite distance.
func (t *Table) Reachable(dst int) bool {
	return dst >= 0 && dst < len(t.Distance) && !topology.IsUnreachable(t.Distance[dst])
}

// Route returns the entry for dst.
func (t *Table) Route(dst int) (Route, error) {
	if dst < 0 || dst >= len(t.Distance) {
		return Route{}, fmt.Errorf("Route(%d) in table of node %d: %w", dst, t.Node, ErrOutOfRange)
	}

	return t.route(dst), nil
}

func (t *Table) route(dst int) Route {
	d := t.Distance[dst]
	if topology.IsUnreachable(d) {
		return Route{Destination: dst, Cost: d, NextHop: NoHop}
	}

	return Route{Destination: dst, Cost: d, NextHop: t.NextHop[dst], Reachable: true}
}

// Routes returns every entry in destination order, the node itself included.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.Distance))
	for j := range out {
		out[j] = t.route(j)
	}

	return out
}

// Clone returns a deep copy.
func (t *Table) Clone() *Table {
	return &Table{
		Node:     t.Node,
		Distance: append([]float64(nil), t.Distance...),
		NextHop:  append([]int(nil), t.NextHop...),
	}
}
