package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alighten/zoo/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the decision tree as a YAML archive",
	Long: `Write the decision tree as a nested YAML document, to the given file
or to stdout. The archive is human-editable and can be loaded back
with "zoo import".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the decision tree from a YAML archive",
	Long: `Read a YAML archive written by "zoo export" (possibly hand-edited),
validate it, and save it as the new decision tree. The previous tree
is overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runExport(cmd *cobra.Command, args []string) error {
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

	out := os.Stdout
	if len(args) == 1 {
		f, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("create archive: %w", err)
		}
		defer f.Close()
		out = f
	}
	return store.EncodeYAML(out, root)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer f.Close()

	root, err := store.DecodeYAML(f)
	if err != nil {
		return err
	}

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Save(root); err != nil {
		return err
	}
	fmt.Printf("Imported tree from %s.\n", args[0])
	return nil
}
