// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dvroute/routing"
)

var header = []string{"Destination", "Cost", "Next Hop"}

// Snapshot converts res into printable node reports, in node order (or the
// order given by WithNodes).
func Snapshot(res *routing.Result, opts ...Option) ([]NodeReport, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return snapshot(res, cfg)
}

func snapshot(res *routing.Result, cfg Options) ([]NodeReport, error) {
	if res == nil {
		return nil, ErrNilResult
	}

	n := res.Size()
	nodes := cfg.Nodes
	if nodes == nil {
		nodes = make([]int, n)
		for i := range nodes {
			nodes[i] = i
		}
	}

	name := namer(res, cfg)
	out := make([]NodeReport, 0, len(nodes))
	for _, i := range nodes {
		tab, err := res.Table(i)
		if err != nil {
			return nil, fmt.Errorf("%w: %d", ErrUnknownNode, i)
		}
		nr := NodeReport{Node: name(i), Routes: make([]RouteReport, 0, n)}
		for _, r := range tab.Routes() {
			if cfg.SkipSelf && r.Destination == i {
				continue
			}
			rr := RouteReport{Destination: name(r.Destination), NextHop: NoHop}
			if r.Reachable {
				c := r.Cost
				rr.Cost = &c
				rr.NextHop = name(r.NextHop)
				rr.Reachable = true
			}
			nr.Routes = append(nr.Routes, rr)
		}
		out = append(out, nr)
	}

	return out, nil
}

// namer returns the function that turns a 0-based index into a printed id.
func namer(res *routing.Result, cfg Options) func(int) string {
	switch {
	case cfg.Labels && res.Topology() != nil:
		top := res.Topology()
		return top.Label
	case cfg.ZeroBased:
		return strconv.Itoa
	}

	return func(i int) string { return strconv.Itoa(i + 1) }
}

// FormatCost prints a reachable cost without trailing zeros.
func FormatCost(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}

func costCell(r RouteReport) string {
	if r.Cost == nil {
		return Unreachable
	}

	return FormatCost(*r.Cost)
}

// Write renders res to w in the configured format.
func Write(w io.Writer, res *routing.Result, opts ...Option) error {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	format, err := ParseFormat(string(cfg.Format))
	if err != nil {
		return err
	}
	snap, err := snapshot(res, cfg)
	if err != nil {
		return err
	}

	switch format {
	case FormatTable:
		return writeTable(w, snap)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return err
		}
		return enc.Close()
	}

	return writeText(w, snap)
}

// writeText prints aligned plain columns, one block per node.
func writeText(w io.Writer, snap []NodeReport) error {
	for idx, nr := range snap {
		if idx > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "Routing table for node %s:\n", nr.Node); err != nil {
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", header[0], header[1], header[2]); err != nil {
			return err
		}
		for _, r := range nr.Routes {
			if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Destination, costCell(r), r.NextHop); err != nil {
				return err
			}
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	return nil
}

// writeTable prints one boxed pterm table per node.
func writeTable(w io.Writer, snap []NodeReport) error {
	for _, nr := range snap {
		data := pterm.TableData{header}
		for _, r := range nr.Routes {
			data = append(data, []string{r.Destination, costCell(r), r.NextHop})
		}
		title := pterm.DefaultSection.WithLevel(2).Sprintf("Routing table for node %s", nr.Node)
		table, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
		if err != nil {
			return fmt.Errorf("report: render node %s: %w", nr.Node, err)
		}
		if _, err := fmt.Fprint(w, title, table, "\n"); err != nil {
			return err
		}
	}

	return nil
}
