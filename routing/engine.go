// SPDX-License-Identifier: MIT
// Package: routing
//
// Purpose:
//   - Drive every node's distance vector to the Bellman-Ford fixed point.
//   - Centralised, synchronous simulation: one pass visits every (i, j, k)
//     triple in fixed order and applies improvements in place.
//
// Determinism:
//   - Loop order is fixed (i → j → k) and only strict improvements are taken,
//     so the first-found next hop wins on cost ties.
//   - Tables of different nodes never read each other within a pass, so the
//     concurrent pass (Workers > 1) yields exactly the serial result.

package routing

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dvroute/topology"
)

// Engine owns the routing tables for one topology.
// An Engine is not safe for concurrent use; Run it once and read the Result.
type Engine struct {
	top    *topology.Topology
	n      int
	cost   []float64 // row-major snapshot of top, read-only
	tables []*Table
	opts   Options
	log    *zap.Logger

	ready   bool // Init has run
	passes  int
	updates int
}

// NewEngine validates options and prepares an engine for t.
//
// Errors:
//   - ErrNilTopology if t is nil.
//   - ErrOptionViolation if any option was invalid.
func NewEngine(t *topology.Topology, opts ...Option) (*Engine, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if t == nil {
		return nil, ErrNilTopology
	}

	n := t.Size()
	cost := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cost[i*n+j] = t.At(i, j)
		}
	}
	if cfg.MaxPasses == 0 {
		cfg.MaxPasses = defaultMaxPasses(n)
	}

	return &Engine{
		top:  t,
		n:    n,
		cost: cost,
		opts: cfg,
		log:  cfg.Logger.With(zap.Int("nodes", n), zap.Stringer("algorithm", cfg.Algorithm)),
	}, nil
}

// defaultMaxPasses is N²+1, never below 2. A valid topology converges in at
// most N passes (N-1 changing ones plus the quiet one).
func defaultMaxPasses(n int) int {
	if p := n*n + 1; p > 2 {
		return p
	}

	return 2
}

// Compute builds an engine for t and runs it to convergence.
func Compute(t *topology.Topology, opts ...Option) (*Result, error) {
	e, err := NewEngine(t, opts...)
	if err != nil {
		return nil, err
	}

	return e.Run()
}

// Init (re)initialises every table from the direct links:
// distance[i][i] = 0, nextHop[i][i] = i; for a link i→j, distance = cost and
// nextHop = j; all else Unreachable / NoHop.
func (e *Engine) Init() {
	n := e.n
	e.tables = make([]*Table, n)
	var i, j int
	for i = 0; i < n; i++ {
		t := newTable(i, n)
		base := i * n
		for j = 0; j < n; j++ {
			if j == i || topology.IsUnreachable(e.cost[base+j]) {
				continue
			}
			t.Distance[j] = e.cost[base+j]
			t.NextHop[j] = j
		}
		e.tables[i] = t
	}
	e.ready = true
	e.passes, e.updates = 0, 0
	e.log.Debug("routing tables initialised", zap.Int("links", e.top.EdgeCount()))
}

// Pass runs one relaxation pass over all (i, j, k) triples and returns the
// number of updates. Init is called first if needed.
func (e *Engine) Pass() (int, error) {
	if !e.ready {
		e.Init()
	}

	var (
		u   int
		err error
	)
	if e.opts.Workers > 1 && e.n > 1 {
		u, err = e.parallelPass()
	} else {
		for i := 0; i < e.n; i++ {
			u += relaxTable(e.cost, e.n, e.tables[i])
		}
	}
	if err != nil {
		return 0, err
	}
	e.passes++
	e.updates += u

	return u, nil
}

// parallelPass relaxes tables on a bounded worker group. Each goroutine owns
// exactly one table and only reads the shared, immutable cost matrix.
func (e *Engine) parallelPass() (int, error) {
	counts := make([]int, e.n)
	g, ctx := errgroup.WithContext(e.opts.Ctx)
	g.SetLimit(e.opts.Workers)
	for i := 0; i < e.n; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			counts[i] = relaxTable(e.cost, e.n, e.tables[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total int
	for _, c := range counts {
		total += c
	}

	return total, nil
}

// relaxTable applies step 2 of the algorithm to a single table:
// for every destination j and intermediate k, take distance[k] + cost[k][j]
// when it is strictly better, inheriting the first hop used to reach k.
func relaxTable(cost []float64, n int, t *Table) int {
	dist, hop := t.Distance, t.NextHop

	var (
		j, k    int
		dk, ckj float64
		cand    float64
		updates int
	)
	for j = 0; j < n; j++ {
		for k = 0; k < n; k++ {
			dk = dist[k]
			if math.IsInf(dk, 1) {
				continue // node cannot reach k yet
			}
			ckj = cost[k*n+j]
			if math.IsInf(ckj, 1) {
				continue // no link k→j
			}
			cand = dk + ckj
			if cand < dist[j] {
				dist[j] = cand
				hop[j] = hop[k]
				updates++
			}
		}
	}

	return updates
}

// Run computes the fixed point with the configured algorithm.
//
// BellmanFord repeats Pass until one produces no update. It fails with
// ErrNotConverged when MaxPasses passes all changed something, and with the
// context error when Ctx is cancelled between passes.
func (e *Engine) Run() (*Result, error) {
	start := time.Now()

	switch e.opts.Algorithm {
	case FloydWarshall:
		e.tables, e.updates = floydWarshall(e.cost, e.n)
		e.passes, e.ready = 1, true
	case Dijkstra:
		e.tables, e.updates = dijkstraAll(e.cost, e.n)
		e.passes, e.ready = 1, true
	default:
		if err := e.relaxToFixedPoint(); err != nil {
			e.log.Debug("relaxation aborted", zap.Int("passes", e.passes), zap.Error(err))
			return nil, err
		}
	}

	e.log.Debug("routing tables converged",
		zap.Int("passes", e.passes),
		zap.Int("updates", e.updates),
		zap.Duration("elapsed", time.Since(start)))

	return &Result{
		Algorithm: e.opts.Algorithm,
		Passes:    e.passes,
		Updates:   e.updates,
		top:       e.top,
		cost:      e.cost,
		tables:    e.tables,
	}, nil
}

func (e *Engine) relaxToFixedPoint() error {
	if !e.ready {
		e.Init()
	}

	for {
		if err := e.opts.Ctx.Err(); err != nil {
			return fmt.Errorf("before pass %d: %w", e.passes+1, err)
		}
		if e.passes >= e.opts.MaxPasses {
			return fmt.Errorf("%w: still changing after %d passes", ErrNotConverged, e.passes)
		}

		u, err := e.Pass()
		if err != nil {
			return fmt.Errorf("pass %d: %w", e.passes+1, err)
		}
		e.opts.OnPass(e.passes, u)
		e.log.Debug("relaxation pass", zap.Int("pass", e.passes), zap.Int("updates", u))
		if u == 0 {
			return nil
		}
	}
}

// Tables returns deep copies of the current tables (nil before Init).
func (e *Engine) Tables() []*Table {
	if !e.ready {
		return nil
	}

	return cloneTables(e.tables)
}

func cloneTables(ts []*Table) []*Table {
	out := make([]*Table, len(ts))
	for i, t := range ts {
		out[i] = t.Clone()
	}

	return out
}
