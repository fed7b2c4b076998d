package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dvroute/report"
	"github.com/katalvlaran/dvroute/routing"
)

func newPathCmd(a *app) *cobra.Command {
	var labels bool

	cmd := &cobra.Command{
		Use:   "path SRC DST",
		Short: "Print the hop-by-hop route between two nodes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			top, err := a.loadTopology()
			if err != nil {
				return err
			}
			src, err := a.nodeIndex(top, args[0])
			if err != nil {
				return err
			}
			dst, err := a.nodeIndex(top, args[1])
			if err != nil {
				return err
			}

			res, err := routing.Compute(top, routing.WithContext(cmd.Context()), routing.WithLogger(a.log))
			if err != nil {
				return err
			}

			name := func(i int) string {
				switch {
				case labels:
					return top.Label(i)
				case a.flags.ZeroBased:
					return fmt.Sprint(i)
				}
				return fmt.Sprint(i + 1)
			}

			out := cmd.OutOrStdout()
			path, err := res.Path(src, dst)
			if err != nil {
				if !errors.Is(err, routing.ErrUnreachable) {
					return err
				}
				_, err = fmt.Fprintf(out, "%s -> %s: %s\n", name(src), name(dst), report.Unreachable)
				return err
			}
			d, _ := res.Distance(src, dst)
			hops := make([]string, len(path))
			for i, p := range path {
				hops[i] = name(p)
			}
			_, err = fmt.Fprintf(out, "%s (cost %s)\n", strings.Join(hops, " -> "), report.FormatCost(d))
			return err
		},
	}
	cmd.Flags().BoolVar(&labels, "labels", false, "print topology labels instead of numbers")

	return cmd
}
