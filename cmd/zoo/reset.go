package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alighten/zoo/internal/prompt"
	"github.com/alighten/zoo/internal/tree"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget everything the game has learned",
	Long: `Delete the stored decision tree. The next round starts over from the
single seed animal.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "Skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	root, err := db.Load()
	if err != nil {
		return err
	}
	if root == nil {
		fmt.Println("Nothing to reset: no tree has been saved yet.")
		return nil
	}

	if !resetForce {
		term := prompt.NewTerminal(os.Stdin, os.Stdout)
		ok, err := term.YesNo(fmt.Sprintf(
			"This forgets all %d animals the game has learned. Are you sure?",
			tree.Leaves(root)))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	if err := db.Reset(); err != nil {
		return err
	}
	fmt.Println("Tree reset. The next round starts from scratch.")
	return nil
}
