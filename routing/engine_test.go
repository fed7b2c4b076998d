// SPDX-License-Identifier: MIT
package routing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/dvroute/routing"
	"github.com/katalvlaran/dvroute/topology"
)

var inf = topology.Unreachable

// EngineSuite exercises the relaxation engine on the canonical 4-node network.
type EngineSuite struct {
	suite.Suite
	top *topology.Topology
}

func (s *EngineSuite) SetupTest() {
	s.top = topology.Example()
}

// TestExampleFromNodeZero checks the worked scenario: 0→1 direct (5) beats
// 0→3→2→1 (6); 0→2 goes through 3 for cost 3.
func (s *EngineSuite) TestExampleFromNodeZero() {
	res, err := routing.Compute(s.top)
	require.NoError(s.T(), err)

	want := []routing.Route{
		{Destination: 0, Cost: 0, NextHop: 0, Reachable: true},
		{Destination: 1, Cost: 5, NextHop: 1, Reachable: true},
		{Destination: 2, Cost: 3, NextHop: 3, Reachable: true},
		{Destination: 3, Cost: 1, NextHop: 3, Reachable: true},
	}
	tab, err := res.Table(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), want, tab.Routes())
}

// TestExampleAllNodes checks every table against hand-computed values.
func (s *EngineSuite) TestExampleAllNodes() {
	res, err := routing.Compute(s.top)
	require.NoError(s.T(), err)

	wantDist := [][]float64{
		{0, 5, 3, 1},
		{5, 0, 3, 5},
		{3, 3, 0, 2},
		{1, 5, 2, 0},
	}
	wantHop := [][]int{
		{0, 1, 3, 3},
		{0, 1, 2, 2},
		{3, 1, 2, 3},
		{0, 2, 2, 3},
	}
	for i := range wantDist {
		for j := range wantDist[i] {
			d, err := res.Distance(i, j)
			require.NoError(s.T(), err)
			require.Equalf(s.T(), wantDist[i][j], d, "distance %d→%d", i, j)

			h, err := res.NextHop(i, j)
			require.NoError(s.T(), err)
			require.Equalf(s.T(), wantHop[i][j], h, "next hop %d→%d", i, j)
		}
	}
	require.NoError(s.T(), res.Verify())
}

// TestPassAccounting checks the pass loop: a changing pass, then a quiet one.
func (s *EngineSuite) TestPassAccounting() {
	var seen []int
	res, err := routing.Compute(s.top, routing.WithOnPass(func(pass, updates int) {
		seen = append(seen, updates)
		require.Equal(s.T(), len(seen), pass)
	}))
	require.NoError(s.T(), err)

	require.Equal(s.T(), len(seen), res.Passes)
	require.GreaterOrEqual(s.T(), res.Passes, 2)
	require.Zero(s.T(), seen[len(seen)-1], "last pass must be quiet")
	total := 0
	for _, u := range seen {
		total += u
	}
	require.Equal(s.T(), total, res.Updates)
	require.Equal(s.T(), routing.BellmanFord, res.Algorithm)
}

// TestIdempotentRelax re-relaxes converged tables.
func (s *EngineSuite) TestIdempotentRelax() {
	res, err := routing.Compute(s.top)
	require.NoError(s.T(), err)
	before := res.Tables()

	require.Zero(s.T(), res.Relax())
	require.Equal(s.T(), before, res.Tables())
}

// TestStepwise drives Init/Pass by hand.
func (s *EngineSuite) TestStepwise() {
	e, err := routing.NewEngine(s.top)
	require.NoError(s.T(), err)
	require.Nil(s.T(), e.Tables())

	e.Init()
	initial := e.Tables()
	require.Equal(s.T(), []float64{0, 5, inf, 1}, initial[0].Distance)
	require.Equal(s.T(), []int{0, 1, routing.NoHop, 3}, initial[0].NextHop)

	u, err := e.Pass()
	require.NoError(s.T(), err)
	require.Positive(s.T(), u)

	for {
		u, err = e.Pass()
		require.NoError(s.T(), err)
		if u == 0 {
			break
		}
	}
	final := e.Tables()
	require.Equal(s.T(), []float64{0, 5, 3, 1}, final[0].Distance)

	// Mutating a copy leaves the engine untouched.
	final[0].Distance[1] = 42
	require.Equal(s.T(), 5.0, e.Tables()[0].Distance[1])
}

// TestPassCap turns a too-small cap into ErrNotConverged.
func (s *EngineSuite) TestPassCap() {
	_, err := routing.Compute(s.top, routing.WithMaxPasses(1))
	require.ErrorIs(s.T(), err, routing.ErrNotConverged)

	res, err := routing.Compute(s.top, routing.WithMaxPasses(s.top.Size()))
	require.NoError(s.T(), err)
	require.LessOrEqual(s.T(), res.Passes, s.top.Size())
}

// TestCancelled stops before the first pass.
func (s *EngineSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := routing.Compute(s.top, routing.WithContext(ctx))
	require.ErrorIs(s.T(), err, context.Canceled)

	_, err = routing.Compute(s.top, routing.WithContext(ctx), routing.WithWorkers(4))
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestLogger checks that progress is logged at Debug.
func (s *EngineSuite) TestLogger() {
	core, logs := observer.New(zap.DebugLevel)
	_, err := routing.Compute(s.top, routing.WithLogger(zap.New(core)))
	require.NoError(s.T(), err)

	require.Equal(s.T(), 1, logs.FilterMessage("routing tables initialised").Len())
	require.Equal(s.T(), 1, logs.FilterMessage("routing tables converged").Len())
	require.NotZero(s.T(), logs.FilterMessage("relaxation pass").Len())
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func TestNewEngine_Errors(t *testing.T) {
	t.Parallel()

	_, err := routing.NewEngine(nil)
	require.ErrorIs(t, err, routing.ErrNilTopology)

	top := topology.Example()
	for name, opt := range map[string]routing.Option{
		"negative-passes": routing.WithMaxPasses(-1),
		"zero-workers":    routing.WithWorkers(0),
		"bad-algorithm":   routing.WithAlgorithm(routing.Algorithm(42)),
	} {
		_, err := routing.NewEngine(top, opt)
		require.ErrorIsf(t, err, routing.ErrOptionViolation, "option %s", name)
	}
}

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]routing.Algorithm{
		"":                routing.BellmanFord,
		"BF":              routing.BellmanFord,
		"distance-vector": routing.BellmanFord,
		"fw":              routing.FloydWarshall,
		"Floyd-Warshall":  routing.FloydWarshall,
		"dijkstra":        routing.Dijkstra,
	} {
		got, err := routing.ParseAlgorithm(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := routing.ParseAlgorithm("ospf")
	require.ErrorIs(t, err, routing.ErrUnknownAlgorithm)

	require.Equal(t, "floyd-warshall", routing.FloydWarshall.String())
	require.Equal(t, "Algorithm(9)", routing.Algorithm(9).String())
}

func TestSingleNode(t *testing.T) {
	t.Parallel()

	top, err := topology.New([][]float64{{0}})
	require.NoError(t, err)

	res, err := routing.Compute(top)
	require.NoError(t, err)
	require.Equal(t, 1, res.Passes)
	require.Zero(t, res.Updates)

	path, err := res.Path(0, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0}, path)
}

// TestIsolatedNode: node 3 has no links at all.
func TestIsolatedNode(t *testing.T) {
	t.Parallel()

	top, err := topology.New([][]float64{
		{0, 1, 4, inf},
		{1, 0, 2, inf},
		{4, 2, 0, inf},
		{inf, inf, inf, 0},
	})
	require.NoError(t, err)

	res, err := routing.Compute(top)
	require.NoError(t, err)
	require.NoError(t, res.Verify())

	for i := 0; i < 4; i++ {
		for _, pair := range [][2]int{{i, 3}, {3, i}} {
			if pair[0] == pair[1] {
				continue
			}
			d, _ := res.Distance(pair[0], pair[1])
			h, _ := res.NextHop(pair[0], pair[1])
			require.True(t, topology.IsUnreachable(d))
			require.Equal(t, routing.NoHop, h)
		}
	}
	d, _ := res.Distance(3, 3)
	h, _ := res.NextHop(3, 3)
	require.Equal(t, 0.0, d)
	require.Equal(t, 3, h)

	d, _ = res.Distance(0, 2)
	require.Equal(t, 3.0, d)

	tab, err := res.Table(0)
	require.NoError(t, err)
	r, err := tab.Route(3)
	require.NoError(t, err)
	require.False(t, r.Reachable)
	require.Equal(t, routing.NoHop, r.NextHop)
	_, err = tab.Route(4)
	require.ErrorIs(t, err, routing.ErrOutOfRange)

	_, err = res.Path(0, 3)
	require.ErrorIs(t, err, routing.ErrUnreachable)
}

// TestDirected: one-way links give asymmetric tables.
func TestDirected(t *testing.T) {
	t.Parallel()

	top, err := topology.FromEdges(3, []topology.Edge{
		{From: 0, To: 1, Cost: 1, Directed: true},
		{From: 1, To: 2, Cost: 1, Directed: true},
		{From: 2, To: 0, Cost: 10, Directed: true},
	})
	require.NoError(t, err)

	res, err := routing.Compute(top)
	require.NoError(t, err)
	require.NoError(t, res.Verify())

	d, _ := res.Distance(0, 2)
	require.Equal(t, 2.0, d)
	d, _ = res.Distance(2, 1)
	require.Equal(t, 11.0, d)
	h, _ := res.NextHop(2, 1)
	require.Equal(t, 0, h)
}

func TestResultAccessors_OutOfRange(t *testing.T) {
	t.Parallel()

	res, err := routing.Compute(topology.Example())
	require.NoError(t, err)
	require.Equal(t, 4, res.Size())

	_, err = res.Table(-1)
	require.ErrorIs(t, err, routing.ErrOutOfRange)
	_, err = res.Distance(0, 4)
	require.ErrorIs(t, err, routing.ErrOutOfRange)
	h, err := res.NextHop(5, 0)
	require.ErrorIs(t, err, routing.ErrOutOfRange)
	require.Equal(t, routing.NoHop, h)
	_, err = res.Path(0, 9)
	require.ErrorIs(t, err, routing.ErrOutOfRange)
}

func TestPath(t *testing.T) {
	t.Parallel()

	res, err := routing.Compute(topology.Example())
	require.NoError(t, err)

	path, err := res.Path(0, 2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 3, 2}, path)

	path, err = res.Path(1, 3)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, path)
}

// TestPath_ZeroCostLoop builds a zero-cost triangle where next hops can point
// back at each other; Path must report the loop instead of spinning.
func TestPath_ZeroCostLoop(t *testing.T) {
	t.Parallel()

	top, err := topology.New([][]float64{
		{0, 0, 1},
		{0, 0, 1},
		{1, 1, 0},
	})
	require.NoError(t, err)

	res, err := routing.Compute(top)
	require.NoError(t, err)
	require.NoError(t, res.Verify())

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			path, err := res.Path(i, j)
			if err != nil {
				require.ErrorIs(t, err, routing.ErrRoutingLoop)
				continue
			}
			require.Equal(t, i, path[0])
			require.Equal(t, j, path[len(path)-1])
		}
	}
}

// TestLargeCosts: path sums close to the float64 limit stay finite, so a
// reachable destination is never reported as unreachable.
func TestLargeCosts(t *testing.T) {
	t.Parallel()

	top, err := topology.FromEdges(3, []topology.Edge{
		{From: 0, To: 1, Cost: 4e307, Directed: true},
		{From: 1, To: 2, Cost: 4e307, Directed: true},
	})
	require.NoError(t, err)

	for _, alg := range []routing.Algorithm{routing.BellmanFord, routing.FloydWarshall, routing.Dijkstra} {
		res, err := routing.Compute(top, routing.WithAlgorithm(alg))
		require.NoError(t, err, alg.String())
		require.NoError(t, res.Verify(), alg.String())

		d, _ := res.Distance(0, 2)
		require.Equal(t, 8e307, d, alg.String())
		path, err := res.Path(0, 2)
		require.NoError(t, err, alg.String())
		require.Equal(t, []int{0, 1, 2}, path)
	}

	_, err = topology.FromEdges(3, []topology.Edge{
		{From: 0, To: 1, Cost: 1e308, Directed: true},
		{From: 1, To: 2, Cost: 1e308, Directed: true},
	})
	require.ErrorIs(t, err, topology.ErrCostOverflow)
}
