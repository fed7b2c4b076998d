package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/dvroute/routing"
	"github.com/katalvlaran/dvroute/topology"
)

// globalFlags are shared by every sub-command.
type globalFlags struct {
	Topology  string // topology file; empty means the built-in example
	ZeroBased bool   // node ids are 0-based on input and output
	Verbose   bool   // debug logging
}

// app carries state prepared in PersistentPreRunE.
type app struct {
	flags globalFlags
	log   *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "dvroute",
		Short: "Distance-vector routing table calculator",
		Long: `dvroute computes, for every node of a static weighted network, the
least-cost route to every other node and the next hop to use, by iterating
Bellman-Ford relaxation until all routing tables stop changing.

The network is read from a YAML or JSON topology file (-t). Without one the
built-in 4-node example is used.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(a.flags.Verbose)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			a.log = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.flags.Topology, "topology", "t", "", "topology file (YAML or JSON); default: built-in example")
	pf.BoolVar(&a.flags.ZeroBased, "zero-based", false, "use 0-based node numbers")
	pf.BoolVarP(&a.flags.Verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(newComputeCmd(a), newPathCmd(a), newValidateCmd(a))

	return root
}

// loadTopology reads the topology named by --topology or returns the example.
func (a *app) loadTopology() (*topology.Topology, error) {
	if a.flags.Topology == "" {
		a.log.Debug("using built-in example topology")
		return topology.Example(), nil
	}
	t, err := topology.Load(a.flags.Topology)
	if err != nil {
		return nil, err
	}
	a.log.Debug("topology loaded",
		zap.String("path", a.flags.Topology),
		zap.Int("nodes", t.Size()),
		zap.Int("links", t.EdgeCount()))

	return t, nil
}

// nodeIndex resolves a command-line node reference. Supplied labels win, as
// in topology documents; otherwise a number follows the active (1- or 0-based)
// numbering.
func (a *app) nodeIndex(t *topology.Topology, s string) (int, error) {
	if t.Named() {
		if i, ok := t.Index(s); ok {
			return i, nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unknown node %q", s)
	}
	if !a.flags.ZeroBased {
		n--
	}
	if n < 0 || n >= t.Size() {
		return 0, fmt.Errorf("node %s: %w", s, routing.ErrOutOfRange)
	}

	return n, nil
}
