// SPDX-License-Identifier: MIT

// Package topology holds the static network a routing simulation runs on:
// an immutable N×N matrix of direct link costs.
//
// Overview:
//
//   - A cell cost(i, j) is either a finite, non-negative cost or Unreachable.
//   - Unreachable is IEEE +Inf, so it can never be confused with a real cost.
//   - The finite costs must sum to at most MaxTotalCost, so no path cost a
//     relaxation computes can overflow into +Inf.
//   - The diagonal is ignored by consumers: a node always reaches itself at cost 0.
//   - Construction validates shape and values once; after that a *Topology is
//     read-only and safe for concurrent readers.
//
// Construction paths:
//
//	New(rows, opts...)         // from a square [][]float64
//	FromEdges(n, edges, ...)   // from an edge list (directed or undirected)
//	Decode(r) / Load(path)     // from a YAML or JSON document
//	Example()                  // the canonical 4-node demo network
//
// Quick ASCII example (Example()):
//
//	      (1)
//	    /     \
//	 5 /       \ 3
//	  /         \
//	(0)         (2)
//	  \         /
//	 1 \       / 2
//	    \     /
//	      (3)
//
// Errors (sentinel, match with errors.Is):
//
//   - ErrEmpty, ErrNonSquare:   structural problems with the matrix.
//   - ErrNegativeCost:          a cost below zero (out of contract for relaxation).
//   - ErrInvalidCost:           NaN or -Inf.
//   - ErrCostOverflow:          finite costs sum past MaxTotalCost.
//   - ErrAsymmetric:            WithSymmetric() was requested and violated.
//   - ErrBadLabels:             label count or uniqueness violated.
//   - ErrOutOfRange:            index outside [0, N).
//   - ErrBadDocument:           a topology document could not be interpreted.
package topology
