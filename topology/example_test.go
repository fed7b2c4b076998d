// Package topology_test shows how to build and inspect topologies.
// Each example is runnable via "go test -run Example".
package topology_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/dvroute/topology"
)

// ExampleNew builds a three-router line A—B—C from a cost matrix.
func ExampleNew() {
	inf := topology.Unreachable
	top, err := topology.New([][]float64{
		{0, 2, inf},
		{2, 0, 4},
		{inf, 4, 0},
	}, topology.WithLabels([]string{"A", "B", "C"}), topology.WithSymmetric())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	nb, _ := top.Neighbors(1)
	fmt.Println("nodes:", top.Size(), "neighbors of B:", nb, "A-C link:", top.HasEdge(0, 2))
	// Output: nodes: 3 neighbors of B: [0 2] A-C link: false
}

// ExampleNew_negative shows that negative costs are rejected up front.
func ExampleNew_negative() {
	_, err := topology.New([][]float64{{0, -1}, {1, 0}})
	fmt.Println(errors.Is(err, topology.ErrNegativeCost))
	// Output: true
}

// ExampleDecode reads an edge-list document.
func ExampleDecode() {
	doc := `
nodes: 3
edges:
  - {from: 0, to: 1, cost: 1}
  - {from: 1, to: 2, cost: 1}
`
	top, err := topology.Decode(strings.NewReader(doc))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(top.EdgeCount())
	// Output: 4
}
