package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the topology and report whether it is valid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			top, err := a.loadTopology()
			if err != nil {
				return err
			}
			kind := "directed"
			if top.Symmetric() {
				kind = "symmetric"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d nodes, %d links, %s\n", top.Size(), top.EdgeCount(), kind)
			return err
		},
	}
}
