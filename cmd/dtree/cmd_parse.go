package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lang-tools/dtree/cluster"
	"github.com/lang-tools/dtree/d/parser"
	"github.com/lang-tools/dtree/internal/format"
	"github.com/lang-tools/dtree/loader"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var stripComments bool
	var optimize bool
	var rules []string

	cmd := &cobra.Command{
		Use:   "parse <path>",
		Short: "Parse a D file or directory into an entity tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := loader.Options{StripComments: stripComments}
			for _, r := range rules {
				rule, err := parseSplitterRule(r)
				if err != nil {
					return err
				}
				opts.Rules = append(opts.Rules, rule)
			}

			_, root, err := loader.Load(args[0], opts)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			if optimize {
				cluster.Optimize(root)
			}

			return encodeTree(root, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, line)")
	cmd.Flags().BoolVar(&stripComments, "strip-comments", false, "drop comments before splitting")
	cmd.Flags().BoolVar(&optimize, "optimize", false, "rebalance wide fan-outs into a binary tree")
	cmd.Flags().StringArrayVar(&rules, "rule", nil, "glob=splitter override, e.g. '*.dd=D' (checked before defaults)")

	return cmd
}

func parseSplitterRule(spec string) (loader.Rule, error) {
	for i := 0; i < len(spec); i++ {
		if spec[i] == '=' {
			glob, name := spec[:i], spec[i+1:]
			splitter, err := splitterByName(name)
			if err != nil {
				return loader.Rule{}, err
			}
			return loader.Rule{Glob: glob, Splitter: splitter}, nil
		}
	}
	return loader.Rule{}, fmt.Errorf("invalid rule %q, expected glob=splitter", spec)
}

func splitterByName(name string) (loader.Splitter, error) {
	switch name {
	case "D":
		return loader.SplitterD, nil
	case "Words":
		return loader.SplitterWords, nil
	case "Files":
		return loader.SplitterFiles, nil
	}
	return 0, fmt.Errorf("unknown splitter %q, expected D, Words, or Files", name)
}

func encodeTree(root *parser.Entity, outputFormat string) error {
	switch outputFormat {
	case "json":
		return format.NewJSONEncoder(os.Stdout).Encode(root)
	case "line":
		return format.NewLineEncoder(os.Stdout).Encode(root)
	}
	return fmt.Errorf("unknown format: %s", outputFormat)
}
