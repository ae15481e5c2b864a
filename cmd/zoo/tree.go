package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alighten/zoo/internal/tree"
)

var treeStats bool

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the current decision tree",
	Long: `Print an indented listing of the decision tree: questions with their
yes/no branches, animal guesses as leaves.`,
	Args: cobra.NoArgs,
	RunE: runTree,
}

func init() {
	treeCmd.Flags().BoolVar(&treeStats, "stats", false, "Also print node, animal and depth counts")
}

func runTree(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	root, err := loadOrSeed(db, cfg)
	if err != nil {
		return err
	}

	tree.Dump(os.Stdout, root)

	if treeStats {
		fmt.Println()
		fmt.Printf("nodes:   %d\n", tree.Count(root))
		fmt.Printf("animals: %d\n", tree.Leaves(root))
		fmt.Printf("depth:   %d\n", tree.Depth(root))
	}
	return nil
}
