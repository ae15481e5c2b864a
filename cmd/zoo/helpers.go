package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/alighten/zoo/internal/config"
	"github.com/alighten/zoo/internal/store"
	"github.com/alighten/zoo/internal/tree"
)

// loadConfig loads the user configuration and applies the global color
// toggle.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if !cfg.Game.Color {
		color.NoColor = true
	}
	return cfg, nil
}

// openDB opens the tree database configured in cfg.
func openDB(cfg *config.Config) (*store.DB, error) {
	db, err := store.Open(cfg.Data.Path)
	if err != nil {
		return nil, fmt.Errorf("open tree database: %w", err)
	}
	return db, nil
}

// loadOrSeed returns the persisted tree, or a fresh single-guess tree
// with the configured seed animal when nothing has been saved yet.
func loadOrSeed(db *store.DB, cfg *config.Config) (*tree.Node, error) {
	root, err := db.Load()
	if err != nil {
		return nil, fmt.Errorf("load tree: %w", err)
	}
	if root != nil {
		return root, nil
	}
	root, err = tree.NewGuess(cfg.Game.SeedAnimal)
	if err != nil {
		return nil, fmt.Errorf("seed tree with %q: %w", cfg.Game.SeedAnimal, err)
	}
	return root, nil
}
