package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dtree",
		Short: "A hierarchical splitter for D source trees",
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newWordsCmd())
	rootCmd.AddCommand(newClusterCmd())
	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newGrammarCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
