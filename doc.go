// Package dvroute computes distance-vector routing tables for a static,
// weighted network: for every node, the least cost to every other node and
// the neighbour to forward through.
//
// What is inside?
//
//	topology/    — validated N×N cost matrix, edge-list builder, YAML/JSON loader
//	routing/     — Bellman-Ford relaxation engine (plus Floyd-Warshall and
//	               Dijkstra cross-checks), path reconstruction, verification
//	report/      — text, boxed table, JSON and YAML renderings of the tables
//	cmd/dvroute/ — cobra CLI: compute, path, validate
//
// Quick ASCII example (the built-in topology):
//
//	    1 ───5─── 2
//	    │         │
//	    1         3
//	    │         │
//	    4 ───2─── 3
//
// Node 1 reaches 3 through 4 at cost 3, never through 2 (cost 8).
//
//	go install github.com/katalvlaran/dvroute/cmd/dvroute@latest
//	dvroute compute -o table
package dvroute
