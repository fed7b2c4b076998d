// SPDX-License-Identifier: MIT

package routing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// NoHop is the next-hop value for a destination with no known path.
const NoHop = -1

// Sentinel errors returned by the routing engine.
var (
	// ErrNilTopology indicates that a nil *topology.Topology was passed in.
	ErrNilTopology = errors.New("routing: topology is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("routing: invalid option supplied")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm for an unknown name.
	ErrUnknownAlgorithm = errors.New("routing: unknown algorithm")

	// ErrNotConverged is returned when relaxation is still changing tables after
	// the pass cap. With validated (non-negative) input this cannot happen; it
	// signals a broken precondition such as a negative cycle.
	ErrNotConverged = errors.New("routing: relaxation did not converge")

	// ErrOutOfRange indicates a node index outside [0, N).
	ErrOutOfRange = errors.New("routing: node index out of range")

	// ErrUnreachable is returned by Path when no route exists.
	ErrUnreachable = errors.New("routing: destination unreachable")

	// ErrRoutingLoop is returned by Path when next hops revisit a node
	// (possible only with zero-cost cycles).
	ErrRoutingLoop = errors.New("routing: next-hop chain loops")

	// ErrInconsistent is returned by Verify when tables break a routing invariant.
	ErrInconsistent = errors.New("routing: inconsistent routing tables")
)

// Algorithm selects how the fixed point is computed. All algorithms produce
// the same distances; next hops may differ where several paths tie.
type Algorithm int

const (
	// BellmanFord is synchronous distance-vector relaxation until no table changes.
	BellmanFord Algorithm = iota

	// FloydWarshall computes all pairs in one O(N³) sweep with next-hop tracking.
	FloydWarshall

	// Dijkstra runs one heap-based search per source node.
	Dijkstra
)

var algorithmNames = [...]string{
	BellmanFord:   "bellman-ford",
	FloydWarshall: "floyd-warshall",
	Dijkstra:      "dijkstra",
}

// String returns the flag spelling of a.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

func (a Algorithm) valid() bool { return a >= 0 && int(a) < len(algorithmNames) }

// ParseAlgorithm maps a name (case-insensitive; "bf", "fw" accepted) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bellman-ford", "bellmanford", "bf", "dv", "distance-vector":
		return BellmanFord, nil
	case "floyd-warshall", "floydwarshall", "fw":
		return FloydWarshall, nil
	case "dijkstra":
		return Dijkstra, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Option configures the engine via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation by NewEngine.
type Option func(*Options)

// Options holds engine parameters and hooks.
type Options struct {
	// Ctx is checked between relaxation passes.
	Ctx context.Context

	// Algorithm picks the fixed-point computation.
	Algorithm Algorithm

	// MaxPasses caps relaxation passes; 0 means N²+1 (minimum 2).
	MaxPasses int

	// Workers > 1 relaxes node tables concurrently within a pass.
	Workers int

	// OnPass is called after every relaxation pass with its update count.
	OnPass func(pass, updates int)

	// Logger receives Debug-level progress; defaults to a no-op logger.
	Logger *zap.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - BellmanFord
//   - MaxPasses 0 (derived from N)
//   - a single worker
//   - no-op OnPass and zap.NewNop()
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Algorithm: BellmanFord,
		MaxPasses: 0,
		Workers:   1,
		OnPass:    func(int, int) {},
		Logger:    zap.NewNop(),
	}
}

// WithContext sets a context for cancellation between passes.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAlgorithm selects the fixed-point algorithm.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		if !a.valid() {
			o.err = fmt.Errorf("%w: algorithm %d", ErrOptionViolation, int(a))
			return
		}
		o.Algorithm = a
	}
}

// WithMaxPasses caps the number of relaxation passes.
//
//	n > 0: at most n passes (the final, change-free pass counts)
//	n == 0: derived default N²+1
//	n < 0: invalid option → ErrOptionViolation
func WithMaxPasses(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPasses cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPasses = n
	}
}

// WithWorkers sets how many node tables are relaxed concurrently (n ≥ 1).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithOnPass registers a hook run after every relaxation pass.
func WithOnPass(fn func(pass, updates int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPass = fn
		}
	}
}

// WithLogger routes engine logs to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Route is one row of a routing table.
type Route struct {
	Destination int
	Cost        float64 // topology.Unreachable when !Reachable
	NextHop     int     // NoHop when !Reachable
	Reachable   bool
}
