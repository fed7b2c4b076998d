// SPDX-License-Identifier: MIT
// Package: topology
//
// Purpose:
//   - Read topology documents (YAML, and JSON as its subset) into a *Topology.
//   - Accept either a full matrix or an edge list.
//
// Document shape:
//
//	labels: [A, B, C, D]        # optional
//	symmetric: true             # optional
//	zero_as_unreachable: false  # optional
//	matrix:                     # cell: number | inf | .inf | "-" | null
//	  - [0, 5, inf, 1]
//	nodes: 4                    # required with edges
//	edges:
//	  - {from: 0, to: 1, cost: 5, directed: false}
//
// Edge endpoints may be labels or 0-based indices; a matching label wins.

package topology

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type document struct {
	Labels            []string    `yaml:"labels"`
	Symmetric         bool        `yaml:"symmetric"`
	ZeroAsUnreachable bool        `yaml:"zero_as_unreachable"`
	Nodes             int         `yaml:"nodes"`
	Matrix            [][]*cell   `yaml:"matrix"`
	Edges             []edgeEntry `yaml:"edges"`
}

type edgeEntry struct {
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Cost     *cell  `yaml:"cost"`
	Directed bool   `yaml:"directed"`
}

// cell is one matrix entry. A nil *cell (YAML null) means Unreachable.
type cell float64

// unreachableWords are the spellings accepted for "no link".
var unreachableWords = map[string]struct{}{
	"inf": {}, ".inf": {}, "+inf": {}, "+.inf": {}, "infinity": {},
	"-": {}, "x": {}, "unreachable": {}, "none": {},
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *cell) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: cost must be a scalar: %w", n.Line, ErrBadDocument)
	}
	v := strings.ToLower(strings.TrimSpace(n.Value))
	if _, ok := unreachableWords[v]; ok {
		*c = cell(Unreachable)
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("line %d: cost %q: %w", n.Line, n.Value, ErrBadDocument)
	}
	*c = cell(f)

	return nil
}

func (c *cell) value() float64 {
	if c == nil {
		return Unreachable
	}

	return float64(*c)
}

// Load opens path and decodes it with Decode.
func Load(path string, opts ...Option) (*Topology, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("topology: open %s: %w", path, err)
	}
	defer f.Close()

	t, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// Decode reads a single topology document from r. Settings in the document
// are applied first, so opts passed by the caller take precedence.
func Decode(r io.Reader, opts ...Option) (*Topology, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty input: %w", ErrBadDocument)
		}
		if errors.Is(err, ErrBadDocument) {
			return nil, err
		}
		return nil, fmt.Errorf("%v: %w", err, ErrBadDocument)
	}

	docOpts := []Option{WithLabels(doc.Labels)}
	if doc.Symmetric {
		docOpts = append(docOpts, WithSymmetric())
	}
	if doc.ZeroAsUnreachable {
		docOpts = append(docOpts, WithZeroAsUnreachable())
	}
	all := append(docOpts, opts...)

	switch {
	case len(doc.Matrix) > 0 && len(doc.Edges) > 0:
		return nil, fmt.Errorf("both matrix and edges given: %w", ErrBadDocument)
	case len(doc.Matrix) > 0:
		return New(doc.matrixRows(), all...)
	case doc.Nodes > 0:
		edges, err := doc.edgeList()
		if err != nil {
			return nil, err
		}
		return FromEdges(doc.Nodes, edges, all...)
	}

	return nil, fmt.Errorf("no matrix and no nodes: %w", ErrBadDocument)
}

func (d *document) matrixRows() [][]float64 {
	rows := make([][]float64, len(d.Matrix))
	for i, r := range d.Matrix {
		rows[i] = make([]float64, len(r))
		for j, c := range r {
			rows[i][j] = c.value()
		}
	}

	return rows
}

func (d *document) edgeList() ([]Edge, error) {
	out := make([]Edge, 0, len(d.Edges))
	for idx, e := range d.Edges {
		from, err := d.resolve(e.From)
		if err != nil {
			return nil, fmt.Errorf("edge %d from: %w", idx, err)
		}
		to, err := d.resolve(e.To)
		if err != nil {
			return nil, fmt.Errorf("edge %d to: %w", idx, err)
		}
		if e.Cost == nil {
			return nil, fmt.Errorf("edge %d has no cost: %w", idx, ErrBadDocument)
		}
		out = append(out, Edge{From: from, To: to, Cost: e.Cost.value(), Directed: e.Directed})
	}

	return out, nil
}

// resolve maps an endpoint to an index: labels win over numeric parsing.
func (d *document) resolve(s string) (int, error) {
	for i, l := range d.Labels {
		if l == s {
			return i, nil
		}
	}
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("unknown node %q: %w", s, ErrBadDocument)
	}

	return i, nil
}
