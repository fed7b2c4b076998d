// SPDX-License-Identifier: MIT
// Package: topology
//
// Purpose:
//   - Immutable row-major cost storage with the index formula i*n + j.
//   - All validation happens once in New; accessors never mutate.
//
// Contract:
//   - Square, N ≥ 1; off-diagonal cells are finite non-negative costs or Unreachable.
//   - The stored diagonal is always 0.

package topology

import (
	"fmt"
	"math"
	"strconv"
)

// Topology is an immutable N×N matrix of direct link costs.
type Topology struct {
	n      int       // node count
	data   []float64 // row-major costs, len == n*n
	labels []string  // human-facing node names, len == n
	named  bool      // labels were supplied, not generated
}

// New validates rows and returns a Topology holding a private copy of them.
//
// Validation order (first failure wins):
//  1. len(rows) ≥ 1                       → ErrEmpty
//  2. every row has len(rows) entries     → ErrNonSquare
//  3. no NaN / -Inf                       → ErrInvalidCost
//  4. no negative finite cost             → ErrNegativeCost
//  5. sum of finite costs ≤ MaxTotalCost  → ErrCostOverflow
//  6. symmetry (WithSymmetric only)       → ErrAsymmetric
//  7. labels (WithLabels only)            → ErrBadLabels
//
// Diagonal cells are not validated and are stored as 0.
// Complexity: O(N²) time and space.
func New(rows [][]float64, opts ...Option) (*Topology, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(rows)
	if n == 0 {
		return nil, ErrEmpty
	}

	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(rows[i]), n, ErrNonSquare)
		}
	}

	data := make([]float64, n*n)
	var v, total float64
	for i = 0; i < n; i++ {
		base := i * n
		for j = 0; j < n; j++ {
			if i == j {
				continue // diagonal stays 0
			}
			v = rows[i][j]
			if cfg.ZeroAsUnreachable && v == 0 {
				v = Unreachable
			}
			if err := checkCost(v); err != nil {
				return nil, cellErrorf(i, j, v, err)
			}
			data[base+j] = v
			if !IsUnreachable(v) {
				total += v
			}
		}
	}
	if total > MaxTotalCost {
		return nil, fmt.Errorf("sum of link costs %v exceeds %v: %w", total, MaxTotalCost, ErrCostOverflow)
	}

	if cfg.Symmetric {
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if data[i*n+j] != data[j*n+i] {
					return nil, fmt.Errorf("cost(%d,%d)=%v vs cost(%d,%d)=%v: %w",
						i, j, data[i*n+j], j, i, data[j*n+i], ErrAsymmetric)
				}
			}
		}
	}

	labels, err := buildLabels(n, cfg.Labels)
	if err != nil {
		return nil, err
	}

	return &Topology{n: n, data: data, labels: labels, named: cfg.Labels != nil}, nil
}

// checkCost enforces the numeric policy for a single off-diagonal cell.
func checkCost(v float64) error {
	switch {
	case math.IsNaN(v), math.IsInf(v, -1):
		return ErrInvalidCost
	case IsUnreachable(v):
		return nil
	case v < 0:
		return ErrNegativeCost
	}

	return nil
}

// buildLabels returns user labels after validation or the 1-indexed defaults.
func buildLabels(n int, user []string) ([]string, error) {
	if user == nil {
		out := make([]string, n)
		for i := range out {
			out[i] = strconv.Itoa(i + 1)
		}
		return out, nil
	}
	if len(user) != n {
		return nil, fmt.Errorf("got %d labels for %d nodes: %w", len(user), n, ErrBadLabels)
	}
	seen := make(map[string]int, n)
	for i, l := range user {
		if l == "" {
			return nil, fmt.Errorf("label %d is empty: %w", i, ErrBadLabels)
		}
		if prev, dup := seen[l]; dup {
			return nil, fmt.Errorf("label %q used by nodes %d and %d: %w", l, prev, i, ErrBadLabels)
		}
		seen[l] = i
	}

	return append([]string(nil), user...), nil
}

// Size returns N, the number of nodes.
func (t *Topology) Size() int { return t.n }

// Cost returns the direct link cost from i to j, Unreachable when there is
// no link, or 0 when i == j.
func (t *Topology) Cost(i, j int) (float64, error) {
	if !t.valid(i) || !t.valid(j) {
		return 0, fmt.Errorf("Cost(%d,%d) with N=%d: %w", i, j, t.n, ErrOutOfRange)
	}

	return t.data[i*t.n+j], nil
}

// At is Cost without bounds reporting, for hot loops that already iterate
// within [0, N). It panics on a bad index like a slice access would.
func (t *Topology) At(i, j int) float64 { return t.data[i*t.n+j] }

// HasEdge reports whether a direct link i→j exists (i != j, finite cost).
// Out-of-range indices report false.
func (t *Topology) HasEdge(i, j int) bool {
	if i == j || !t.valid(i) || !t.valid(j) {
		return false
	}

	return !IsUnreachable(t.data[i*t.n+j])
}

// Neighbors returns the nodes j with a direct link i→j, ascending.
func (t *Topology) Neighbors(i int) ([]int, error) {
	if !t.valid(i) {
		return nil, fmt.Errorf("Neighbors(%d) with N=%d: %w", i, t.n, ErrOutOfRange)
	}
	out := make([]int, 0, t.n)
	base := i * t.n
	for j := 0; j < t.n; j++ {
		if j != i && !IsUnreachable(t.data[base+j]) {
			out = append(out, j)
		}
	}

	return out, nil
}

// EdgeCount returns the number of directed links (an undirected link counts twice).
func (t *Topology) EdgeCount() int {
	var c int
	for i := 0; i < t.n; i++ {
		for j := 0; j < t.n; j++ {
			if i != j && !IsUnreachable(t.data[i*t.n+j]) {
				c++
			}
		}
	}

	return c
}

// Rows returns a fresh copy of the cost matrix.
func (t *Topology) Rows() [][]float64 {
	out := make([][]float64, t.n)
	for i := range out {
		out[i] = append([]float64(nil), t.data[i*t.n:(i+1)*t.n]...)
	}

	return out
}

// Label returns the human-facing name of node i ("" when out of range).
func (t *Topology) Label(i int) string {
	if !t.valid(i) {
		return ""
	}

	return t.labels[i]
}

// Labels returns a copy of all node labels in index order.
func (t *Topology) Labels() []string { return append([]string(nil), t.labels...) }

// Named reports whether labels were supplied with WithLabels rather than
// generated as "1".."N".
func (t *Topology) Named() bool { return t.named }

// Index resolves a label back to its node index.
func (t *Topology) Index(label string) (int, bool) {
	for i, l := range t.labels {
		if l == label {
			return i, true
		}
	}

	return -1, false
}

// Symmetric reports whether cost(i,j) == cost(j,i) for all pairs.
func (t *Topology) Symmetric() bool {
	for i := 0; i < t.n; i++ {
		for j := i + 1; j < t.n; j++ {
			if t.data[i*t.n+j] != t.data[j*t.n+i] {
				return false
			}
		}
	}

	return true
}

func (t *Topology) valid(i int) bool { return i >= 0 && i < t.n }
