package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lang-tools/dtree/cluster"
	"github.com/lang-tools/dtree/loader"
)

// newClusterCmd exposes the binary rebalancing pass on its own, useful
// when comparing a split's raw fan-out against its optimized shape.
func newClusterCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "cluster <path>",
		Short: "Split a path and print its rebalanced entity tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, root, err := loader.Load(args[0], loader.Options{})
			if err != nil {
				return fmt.Errorf("cluster: %w", err)
			}
			cluster.Optimize(root)
			return encodeTree(root, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, line)")

	return cmd
}
