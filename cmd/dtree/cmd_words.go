package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lang-tools/dtree/d/parser"
	"github.com/lang-tools/dtree/internal/ebnfword"
)

func newWordsCmd() *cobra.Command {
	var outputFormat string
	var grammarPath string
	var wordProduction string

	cmd := &cobra.Command{
		Use:   "words <file>",
		Short: "Split a file into whitespace-coalesced words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contents, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("words: %w", err)
			}

			var children []*parser.Entity
			if grammarPath != "" {
				grammar, err := ebnfword.LoadGrammar(grammarPath)
				if err != nil {
					return fmt.Errorf("words: %w", err)
				}
				children, err = ebnfword.Split(grammar, contents, args[0], wordProduction)
				if err != nil {
					return fmt.Errorf("words: %w", err)
				}
			} else {
				children = parser.WordsToEntities(contents)
			}

			root := &parser.Entity{
				Filename: args[0],
				Contents: string(contents),
				Token:    parser.KindNone,
				Children: children,
			}

			return encodeTree(root, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, line)")
	cmd.Flags().StringVar(&grammarPath, "grammar", "", "EBNF grammar file defining a Word production for grammar-driven splitting")
	cmd.Flags().StringVar(&wordProduction, "word-production", ebnfword.DefaultWordProduction, "grammar production name treated as a word")

	return cmd
}
