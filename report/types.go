// SPDX-License-Identifier: MIT

// Package report renders converged routing tables for people and tools.
//
// Formats:
//
//	FormatText  – plain columns, one block per node (default)
//	FormatTable – boxed pterm tables for terminals
//	FormatJSON  – indented JSON of Snapshot
//	FormatYAML  – YAML of Snapshot
//
// Node identifiers are 1-indexed by default, matching how networks are usually
// drawn; WithZeroBased switches to the engine's internal indices and
// WithLabels to the topology's node names. A destination without a route is
// always printed as "unreachable" with next hop "-", never as a number.
package report

import (
	"errors"
	"fmt"
	"strings"
)

// Unreachable and NoHop are the printed forms of a missing route.
const (
	Unreachable = "unreachable"
	NoHop       = "-"
)

// Sentinel errors.
var (
	// ErrNilResult is returned when a nil *routing.Result is passed.
	ErrNilResult = errors.New("report: result is nil")

	// ErrUnknownFormat is returned for an unsupported output format.
	ErrUnknownFormat = errors.New("report: unknown format")

	// ErrUnknownNode is returned when WithNodes names a node outside the result.
	ErrUnknownNode = errors.New("report: unknown node")
)

// Format selects the output encoding.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Option configures rendering.
type Option func(*Options)

// Options holds rendering parameters.
type Options struct {
	Format    Format
	ZeroBased bool  // print internal 0-based indices
	Labels    bool  // print topology labels instead of numbers
	SkipSelf  bool  // omit each node's row for itself
	Nodes     []int // 0-based nodes whose tables are printed; nil means all
}

// DefaultOptions prints every table as 1-indexed text, self rows included.
func DefaultOptions() Options {
	return Options{Format: FormatText}
}

// WithFormat selects the output format.
func WithFormat(f Format) Option {
	return func(o *Options) { o.Format = f }
}

// WithZeroBased prints node numbers as the engine's 0-based indices.
func WithZeroBased() Option {
	return func(o *Options) { o.ZeroBased = true }
}

// WithLabels prints topology labels as node names.
func WithLabels() Option {
	return func(o *Options) { o.Labels = true }
}

// WithSkipSelf omits the row for a node's own entry.
func WithSkipSelf() Option {
	return func(o *Options) { o.SkipSelf = true }
}

// WithNodes restricts output to the given 0-based nodes, in the given order.
func WithNodes(nodes ...int) Option {
	return func(o *Options) { o.Nodes = append([]int(nil), nodes...) }
}

// NodeReport is one node's printable routing table.
type NodeReport struct {
	Node   string        `json:"node" yaml:"node"`
	Routes []RouteReport `json:"routes" yaml:"routes"`
}

// RouteReport is one printable row. Cost is nil when the destination is
// unreachable.
type RouteReport struct {
	Destination string   `json:"destination" yaml:"destination"`
	Cost        *float64 `json:"cost" yaml:"cost"`
	NextHop     string   `json:"next_hop" yaml:"next_hop"`
	Reachable   bool     `json:"reachable" yaml:"reachable"`
}
