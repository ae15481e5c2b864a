package main

import (
	"github.com/spf13/cobra"

	"github.com/alighten/zoo/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Explore the decision tree interactively",
	Long: `Open a read-only browser over the decision tree. Answer y/n to walk
down a branch, esc to back up, q to quit. Nothing is modified.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
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

	return tui.Run(root)
}
