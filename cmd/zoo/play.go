package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alighten/zoo/internal/game"
	"github.com/alighten/zoo/internal/prompt"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one round of the guessing game",
	Long: `Play one round: think of an animal, answer the yes/no questions, and
confirm or correct the final guess. A wrong guess teaches the game a
new animal and grows the tree on disk.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
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

	// Ctrl-C ends the session cleanly. Saves are single transactions
	// after a completed teach, so abandoning mid-round never leaves a
	// torn tree.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println()
		fmt.Println()
		color.New(color.FgBlue).Println("Ok, bye for now.")
		fmt.Println()
		os.Exit(0)
	}()

	engine, err := game.New(game.Config{
		Root:     root,
		Prompter: prompt.NewTerminal(os.Stdin, os.Stdout),
		Saver:    db,
		Out:      os.Stdout,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("------------------------------------------------------")
	fmt.Println("Think of an animal, and I'll try and guess what it is.")
	return engine.Play()
}
