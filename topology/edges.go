// SPDX-License-Identifier: MIT

package topology

import "fmt"

// FromEdges builds an n-node topology from an edge list.
// Undirected edges fill both directions; when the same cell is given twice the
// cheaper cost is kept. Self-loops are ignored. Edge endpoints outside [0, n)
// return ErrOutOfRange; cost validation is the same as in New.
func FromEdges(n int, edges []Edge, opts ...Option) (*Topology, error) {
	if n <= 0 {
		return nil, ErrEmpty
	}

	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			if i != j {
				rows[i][j] = Unreachable
			}
		}
	}

	for idx, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("edge %d (%d→%d) with N=%d: %w", idx, e.From, e.To, n, ErrOutOfRange)
		}
		if e.From == e.To {
			continue
		}
		if err := checkCost(e.Cost); err != nil {
			return nil, fmt.Errorf("edge %d: %w", idx, cellErrorf(e.From, e.To, e.Cost, err))
		}
		place(rows, e.From, e.To, e.Cost)
		if !e.Directed {
			place(rows, e.To, e.From, e.Cost)
		}
	}

	return New(rows, opts...)
}

// place keeps the cheaper of the existing and the new cost.
func place(rows [][]float64, i, j int, c float64) {
	if c < rows[i][j] {
		rows[i][j] = c
	}
}

// Example returns the 4-node demo network used throughout the docs:
//
//	0↔1 cost 5, 0↔3 cost 1, 1↔2 cost 3, 2↔3 cost 2.
func Example() *Topology {
	t, err := FromEdges(4, []Edge{
		{From: 0, To: 1, Cost: 5},
		{From: 0, To: 3, Cost: 1},
		{From: 1, To: 2, Cost: 3},
		{From: 2, To: 3, Cost: 2},
	})
	if err != nil {
		panic(err) // static input
	}

	return t
}
