// Command dvroute computes distance-vector routing tables for a static
// network and prints them.
//
// Usage:
//
//	dvroute compute                       # built-in 4-node network, text output
//	dvroute compute -t net.yaml -o table  # pterm tables
//	dvroute compute -t net.yaml -o json --algorithm dijkstra
//	dvroute path 1 3 -t net.yaml          # hop sequence between two nodes
//	dvroute validate -t net.yaml          # load and validate only
//
// Node arguments are 1-indexed unless --zero-based is given; labels from the
// topology file are accepted as well.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
