package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zoo",
	Short: "An animal guessing game that learns",
	Long: `Zoo is a "20 questions" style guessing game. Think of an animal and
it walks a tree of yes/no questions to guess what it is. When it
guesses wrong, it asks you for a question that tells your animal apart
from its guess and remembers it for next time.

With no arguments, plays one round (same as "zoo play").`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd, args)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}
