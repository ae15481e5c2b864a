// Package game drives one round of the guessing game: walk the
// decision tree by asking yes/no questions, confirm the final guess,
// and when the guess is wrong, learn a new animal by splitting the
// wrong leaf into a fresh question node.
package game

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/alighten/zoo/internal/tree"
)

// Prompter asks the user questions and returns their answers. The
// terminal implementation lives in internal/prompt; tests script one.
type Prompter interface {
	// YesNo keeps asking until it gets a yes or no answer.
	YesNo(question string) (bool, error)
	// Line asks for a free-text answer and returns it trimmed.
	Line(promptText string) (string, error)
}

// Saver persists the whole tree after it has grown. The engine never
// loads; the caller hands it a ready root.
type Saver interface {
	Save(root *tree.Node) error
}

// Config carries the engine's collaborators.
type Config struct {
	Root     *tree.Node
	Prompter Prompter
	Saver    Saver
	// Out receives the game's narration (success/give-up lines).
	// Prompt text goes through the Prompter, not Out.
	Out io.Writer
}

// Engine plays one round against a decision tree. It owns the mutable
// root reference: teaching at the root replaces it in place of the
// original program's global variable.
type Engine struct {
	root     *tree.Node
	prompter Prompter
	saver    Saver
	out      io.Writer

	success *color.Color
	giveUp  *color.Color
}

// New creates an engine. All Config fields are required.
func New(cfg Config) (*Engine, error) {
	if cfg.Root == nil {
		return nil, errors.New("engine: nil root")
	}
	if cfg.Prompter == nil {
		return nil, errors.New("engine: nil prompter")
	}
	if cfg.Saver == nil {
		return nil, errors.New("engine: nil saver")
	}
	if cfg.Out == nil {
		return nil, errors.New("engine: nil output writer")
	}
	return &Engine{
		root:     cfg.Root,
		prompter: cfg.Prompter,
		saver:    cfg.Saver,
		out:      cfg.Out,
		success:  color.New(color.FgGreen),
		giveUp:   color.New(color.FgRed),
	}, nil
}

// Root returns the current tree root, which may differ from the
// configured one after a round that taught at the root.
func (e *Engine) Root() *tree.Node {
	return e.root
}

// Play runs exactly one round: walk questions until a guess, confirm
// it, and teach on a wrong guess. The tree is persisted only when it
// grew; a confirmed guess leaves the store untouched.
func (e *Engine) Play() error {
	node := e.root
	for node.Kind() == tree.KindQuestion {
		yes, err := e.prompter.YesNo(node.Question() + "?")
		if err != nil {
			return fmt.Errorf("ask %s: %w", node, err)
		}
		if yes {
			node = node.Yes()
		} else {
			node = node.No()
		}
	}
	return e.confirmGuess(node)
}

// confirmGuess asks whether the reached guess is right and teaches a
// new animal when it is not.
func (e *Engine) confirmGuess(g *tree.Node) error {
	right, err := e.prompter.YesNo(fmt.Sprintf("Is your animal a %s?", g.Animal()))
	if err != nil {
		return fmt.Errorf("confirm %s: %w", g, err)
	}
	if right {
		fmt.Fprintln(e.out)
		e.success.Fprintln(e.out, "Yay! I guessed right!")
		return nil
	}
	return e.teach(g)
}

// teach splits the wrong guess into a new question node. The new
// animal always sits on the yes side: the distinguishing question is
// phrased so it is true for the new animal and false for the old one.
func (e *Engine) teach(wrong *tree.Node) error {
	fmt.Fprintln(e.out)
	e.giveUp.Fprintf(e.out, "Ok, so it's not a %s. I give up.\n", wrong.Animal())
	fmt.Fprintln(e.out)

	animal, err := e.askAnimal()
	if err != nil {
		return err
	}
	question, err := e.askDistinguisher(animal, wrong.Animal())
	if err != nil {
		return err
	}

	// Capture the rewire point before NewQuestion repoints the wrong
	// guess's parent link at the new node.
	parent := wrong.Parent()

	newGuess, err := tree.NewGuess(animal)
	if err != nil {
		return fmt.Errorf("teach: %w", err)
	}
	split, err := tree.NewQuestion(question, newGuess, wrong)
	if err != nil {
		return fmt.Errorf("teach: %w", err)
	}

	if parent == nil {
		e.root = split
	} else if err := parent.ReplaceChild(wrong, split); err != nil {
		return fmt.Errorf("teach: %w", err)
	}

	if err := e.saver.Save(e.root); err != nil {
		return fmt.Errorf("save tree: %w", err)
	}

	fmt.Fprintln(e.out)
	e.success.Fprintf(e.out, "Thanks! I'll remember %q for next time.\n", animal)
	return nil
}

// askAnimal prompts for the animal the user was thinking of, looping
// until a non-empty name is given and confirmed.
func (e *Engine) askAnimal() (string, error) {
	for {
		name, err := e.prompter.Line("What animal were you thinking of?")
		if err != nil {
			return "", fmt.Errorf("ask animal: %w", err)
		}
		name = strings.ToLower(name)
		if name == "" {
			continue
		}
		ok, err := e.prompter.YesNo(fmt.Sprintf("Your animal was %q?", name))
		if err != nil {
			return "", fmt.Errorf("confirm animal: %w", err)
		}
		if ok {
			return name, nil
		}
	}
}

// askDistinguisher prompts for a question that is true for the new
// animal but not the old one, looping until the user confirms the
// phrasing.
func (e *Engine) askDistinguisher(newAnimal, oldAnimal string) (string, error) {
	fmt.Fprintln(e.out)
	fmt.Fprintf(e.out, "I need to know how to tell the difference between %q and %q.\n", newAnimal, oldAnimal)
	for {
		text, err := e.prompter.Line(fmt.Sprintf(
			"What statement would be TRUE for %q but NOT TRUE for %q?", newAnimal, oldAnimal))
		if err != nil {
			return "", fmt.Errorf("ask question: %w", err)
		}
		text = tree.NormalizeQuestion(text)
		if text == "" {
			continue
		}

		fmt.Fprintln(e.out)
		fmt.Fprintf(e.out, "So if I asked you %q, your answer would be true for %q, but false for %q.\n",
			text+"?", newAnimal, oldAnimal)
		ok, err := e.prompter.YesNo("Is that right?")
		if err != nil {
			return "", fmt.Errorf("confirm question: %w", err)
		}
		if ok {
			return text, nil
		}
	}
}
