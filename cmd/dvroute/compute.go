package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/dvroute/report"
	"github.com/katalvlaran/dvroute/routing"
)

type computeFlags struct {
	Output    string
	Algorithm string
	Workers   int
	MaxPasses int
	SkipSelf  bool
	Labels    bool
	Verify    bool
	Nodes     []string
}

func newComputeCmd(a *app) *cobra.Command {
	f := &computeFlags{}

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute and print the routing table of every node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			top, err := a.loadTopology()
			if err != nil {
				return err
			}
			alg, err := routing.ParseAlgorithm(f.Algorithm)
			if err != nil {
				return err
			}
			format, err := report.ParseFormat(f.Output)
			if err != nil {
				return err
			}

			res, err := routing.Compute(top,
				routing.WithContext(cmd.Context()),
				routing.WithAlgorithm(alg),
				routing.WithWorkers(f.Workers),
				routing.WithMaxPasses(f.MaxPasses),
				routing.WithLogger(a.log),
			)
			if err != nil {
				return err
			}
			a.log.Info("routing tables computed",
				zap.Stringer("algorithm", res.Algorithm),
				zap.Int("passes", res.Passes),
				zap.Int("updates", res.Updates))

			if f.Verify {
				if err := res.Verify(); err != nil {
					return err
				}
			}

			opts := []report.Option{report.WithFormat(format)}
			if a.flags.ZeroBased {
				opts = append(opts, report.WithZeroBased())
			}
			if f.Labels {
				opts = append(opts, report.WithLabels())
			}
			if f.SkipSelf {
				opts = append(opts, report.WithSkipSelf())
			}
			if len(f.Nodes) > 0 {
				idx := make([]int, 0, len(f.Nodes))
				for _, s := range f.Nodes {
					i, err := a.nodeIndex(top, s)
					if err != nil {
						return err
					}
					idx = append(idx, i)
				}
				opts = append(opts, report.WithNodes(idx...))
			}

			return report.Write(cmd.OutOrStdout(), res, opts...)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.Output, "output", "o", string(report.FormatText), "output format: text|table|json|yaml")
	fl.StringVar(&f.Algorithm, "algorithm", routing.BellmanFord.String(), "bellman-ford|floyd-warshall|dijkstra")
	fl.IntVar(&f.Workers, "workers", 1, "node tables relaxed concurrently per pass")
	fl.IntVar(&f.MaxPasses, "max-passes", 0, "relaxation pass cap (0 = N²+1)")
	fl.BoolVar(&f.SkipSelf, "skip-self", false, "omit each node's entry for itself")
	fl.BoolVar(&f.Labels, "labels", false, "print topology labels instead of numbers")
	fl.BoolVar(&f.Verify, "verify", false, "check routing invariants before printing")
	fl.StringSliceVar(&f.Nodes, "node", nil, "only print these nodes (repeatable)")

	return cmd
}
