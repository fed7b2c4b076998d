// SPDX-License-Identifier: MIT
package topology_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dvroute/topology"
)

const matrixYAML = `
labels: [A, B, C, D]
symmetric: true
matrix:
  - [0, 5, inf, 1]
  - [5, 0, 3, "-"]
  - [.inf, 3, 0, 2]
  - [1, ~, 2, 0]
`

func TestDecode_Matrix(t *testing.T) {
	t.Parallel()

	top, err := topology.Decode(strings.NewReader(matrixYAML))
	require.NoError(t, err)

	assert.Equal(t, 4, top.Size())
	assert.Equal(t, []string{"A", "B", "C", "D"}, top.Labels())
	assert.Equal(t, topology.Example().Rows(), top.Rows())
}

func TestDecode_JSON(t *testing.T) {
	t.Parallel()

	doc := `{"matrix": [[0, 2, null], [2, 0, 1], [null, 1, 0]]}`
	top, err := topology.Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 2.0, top.At(0, 1))
	assert.False(t, top.HasEdge(0, 2))
}

func TestDecode_EdgesWithLabels(t *testing.T) {
	t.Parallel()

	doc := `
labels: [hub, east, west]
nodes: 3
edges:
  - {from: hub, to: east, cost: 4}
  - {from: 0, to: 2, cost: 1.5, directed: true}
`
	top, err := topology.Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 4.0, top.At(1, 0))
	assert.Equal(t, 1.5, top.At(0, 2))
	assert.False(t, top.HasEdge(2, 0))
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		doc  string
		want error
	}{
		"empty":       {"", topology.ErrBadDocument},
		"nothing":     {"labels: [a]", topology.ErrBadDocument},
		"both":        {"nodes: 2\nmatrix: [[0]]\nedges: [{from: 0, to: 1, cost: 1}]", topology.ErrBadDocument},
		"bad-cell":    {"matrix: [[0, abc], [1, 0]]", topology.ErrBadDocument},
		"unknown-key": {"matrx: [[0]]", topology.ErrBadDocument},
		"no-cost":     {"nodes: 2\nedges: [{from: 0, to: 1}]", topology.ErrBadDocument},
		"bad-node":    {"nodes: 2\nedges: [{from: z, to: 1, cost: 1}]", topology.ErrBadDocument},
		"ragged":      {"matrix: [[0, 1], [1]]", topology.ErrNonSquare},
		"negative":    {"matrix: [[0, -4], [1, 0]]", topology.ErrNegativeCost},
		"asym":        {"symmetric: true\nmatrix: [[0, 1], [2, 0]]", topology.ErrAsymmetric},
	}
	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := topology.Decode(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "net.yaml")
	require.NoError(t, os.WriteFile(path, []byte(matrixYAML), 0o600))

	top, err := topology.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, top.Size())

	// Caller options override the document.
	top, err = topology.Load(path, topology.WithLabels([]string{"w", "x", "y", "z"}))
	require.NoError(t, err)
	assert.Equal(t, "z", top.Label(3))

	_, err = topology.Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
