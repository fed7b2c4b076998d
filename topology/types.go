// SPDX-License-Identifier: MIT

package topology

import (
	"errors"
	"fmt"
	"math"
)

// Unreachable marks the absence of a direct link (and, in routing tables,
// the absence of any path). It is +Inf and compares greater than every cost.
var Unreachable = math.Inf(1)

// MaxTotalCost bounds the sum of all finite link costs. Any relaxation sum is
// at most twice that total, so it stays finite and never collapses into
// Unreachable.
const MaxTotalCost = math.MaxFloat64 / 2

// IsUnreachable reports whether c is the Unreachable sentinel.
func IsUnreachable(c float64) bool { return math.IsInf(c, 1) }

// Sentinel errors. Every message is prefixed with "topology: " for grep-ability;
// call sites wrap them with coordinates via fmt.Errorf("...: %w", ErrX).
var (
	// ErrEmpty is returned when the matrix has no rows (N must be ≥ 1).
	ErrEmpty = errors.New("topology: matrix is empty")

	// ErrNonSquare is returned when a row length differs from the row count.
	ErrNonSquare = errors.New("topology: matrix is not square")

	// ErrNegativeCost is returned for a link cost below zero.
	ErrNegativeCost = errors.New("topology: negative link cost")

	// ErrInvalidCost is returned for NaN or -Inf cells.
	ErrInvalidCost = errors.New("topology: invalid link cost")

	// ErrCostOverflow is returned when the finite costs add up past MaxTotalCost.
	ErrCostOverflow = errors.New("topology: total link cost overflows")

	// ErrAsymmetric is returned when WithSymmetric is set and cost(i,j) != cost(j,i).
	ErrAsymmetric = errors.New("topology: matrix is not symmetric")

	// ErrBadLabels is returned when labels do not match the node count or repeat.
	ErrBadLabels = errors.New("topology: invalid node labels")

	// ErrOutOfRange is returned by accessors for an index outside [0, N).
	ErrOutOfRange = errors.New("topology: node index out of range")

	// ErrBadDocument is returned by Decode/Load when a document cannot be interpreted.
	ErrBadDocument = errors.New("topology: invalid topology document")
)

// Edge is one link in an edge-list description of a topology.
// Undirected edges (Directed == false) populate both cost(From,To) and cost(To,From).
type Edge struct {
	From     int
	To       int
	Cost     float64
	Directed bool
}

// Option configures topology construction.
type Option func(*Options)

// Options holds construction parameters. Use DefaultOptions as a base.
type Options struct {
	// Labels names nodes for human-facing output; nil means "1".."N".
	Labels []string

	// Symmetric requires cost(i,j) == cost(j,i) for every pair.
	Symmetric bool

	// ZeroAsUnreachable treats an off-diagonal 0 as "no link", the convention
	// of plain adjacency matrices. By default 0 is a legitimate zero-cost link.
	ZeroAsUnreachable bool
}

// DefaultOptions returns the zero-configuration: generated labels, no symmetry
// requirement and zero as a real cost.
func DefaultOptions() Options {
	return Options{}
}

// WithLabels assigns human-readable node names. The slice is copied.
func WithLabels(labels []string) Option {
	return func(o *Options) {
		if labels == nil {
			o.Labels = nil
			return
		}
		o.Labels = append([]string(nil), labels...)
	}
}

// WithSymmetric enables the symmetry check (ErrAsymmetric on violation).
func WithSymmetric() Option {
	return func(o *Options) { o.Symmetric = true }
}

// WithZeroAsUnreachable makes off-diagonal zero cells mean "no link".
func WithZeroAsUnreachable() Option {
	return func(o *Options) { o.ZeroAsUnreachable = true }
}

// cellErrorf attaches matrix coordinates to a sentinel.
func cellErrorf(i, j int, v float64, err error) error {
	return fmt.Errorf("cost(%d,%d)=%v: %w", i, j, v, err)
}
