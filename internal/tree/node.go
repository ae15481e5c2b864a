// Package tree implements the binary decision tree behind the guessing
// game. Internal nodes hold yes/no questions, leaves hold animal
// guesses. The tree only ever grows by splitting a leaf into a new
// question node; that mutation goes through ReplaceChild so parent
// links stay consistent.
package tree

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput indicates an empty animal name or question text
// reached a constructor. The interactive prompt loops re-ask on empty
// input, so hitting this is a programming defect, not a user error.
var ErrInvalidInput = errors.New("empty animal name or question text")

// ErrNotAChild indicates a child replacement was requested on a node
// that does not hold the given child in either slot.
var ErrNotAChild = errors.New("node is not a child of this question")

// Kind discriminates the two node variants.
type Kind int

const (
	// KindGuess is a leaf holding an animal name.
	KindGuess Kind = iota
	// KindQuestion is an internal node holding a yes/no question.
	KindQuestion
)

// String returns the kind name for display and persistence.
func (k Kind) String() string {
	switch k {
	case KindGuess:
		return "guess"
	case KindQuestion:
		return "question"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Node is a single node of the decision tree, either a guess or a
// question depending on its kind. The yes/no links are the owning
// edges; parent is a non-owning back-reference used only to rewire the
// tree when a leaf is split.
type Node struct {
	kind     Kind
	animal   string // KindGuess only
	question string // KindQuestion only, stored without a trailing "?"
	yes      *Node  // KindQuestion only
	no       *Node  // KindQuestion only
	parent   *Node  // nil at the root
}

// NewGuess creates a leaf guessing the given animal. Names are
// compared and displayed lowercase, so the stored form is normalized
// here. Returns ErrInvalidInput if the name is empty after trimming.
func NewGuess(animal string) (*Node, error) {
	animal = strings.ToLower(strings.TrimSpace(animal))
	if animal == "" {
		return nil, fmt.Errorf("new guess: %w", ErrInvalidInput)
	}
	return &Node{kind: KindGuess, animal: animal}, nil
}

// NewQuestion creates an internal node owning the two given children.
// The question text is trimmed and a trailing question mark stripped;
// the "?" is re-added at display time. Returns ErrInvalidInput if the
// text is empty after normalization or either child is nil.
func NewQuestion(text string, yes, no *Node) (*Node, error) {
	text = NormalizeQuestion(text)
	if text == "" {
		return nil, fmt.Errorf("new question: %w", ErrInvalidInput)
	}
	if yes == nil || no == nil {
		return nil, fmt.Errorf("new question %q: missing child: %w", text, ErrInvalidInput)
	}
	q := &Node{kind: KindQuestion, question: text, yes: yes, no: no}
	yes.parent = q
	no.parent = q
	return q, nil
}

// NormalizeQuestion trims the text and strips one trailing question
// mark. The result may be empty; callers decide whether that is an
// error or a re-prompt.
func NormalizeQuestion(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "?")
	return strings.TrimSpace(text)
}

// Kind returns the node's variant.
func (n *Node) Kind() Kind { return n.kind }

// Animal returns the guessed animal name. Empty for questions.
func (n *Node) Animal() string { return n.animal }

// Question returns the question text without its trailing "?". Empty
// for guesses.
func (n *Node) Question() string { return n.question }

// Yes returns the child followed on a "yes" answer, nil for guesses.
func (n *Node) Yes() *Node { return n.yes }

// No returns the child followed on a "no" answer, nil for guesses.
func (n *Node) No() *Node { return n.no }

// Parent returns the node's question parent, or nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

// ReplaceChild swaps the slot currently holding old (matched by
// identity) for repl and points repl's parent at n. Returns
// ErrNotAChild if n is not a question or old is in neither slot; the
// tree is left untouched in that case.
func (n *Node) ReplaceChild(old, repl *Node) error {
	if n.kind != KindQuestion {
		return fmt.Errorf("replace child of %s: %w", n, ErrNotAChild)
	}
	switch {
	case n.yes == old:
		n.yes = repl
	case n.no == old:
		n.no = repl
	default:
		return fmt.Errorf("replace child of %s: %w", n, ErrNotAChild)
	}
	repl.parent = n
	return nil
}

// String renders a short one-line form for errors and debug output.
func (n *Node) String() string {
	switch n.kind {
	case KindGuess:
		return fmt.Sprintf("Guess(%s)", n.animal)
	case KindQuestion:
		return fmt.Sprintf("Question(%s)", n.question)
	default:
		return fmt.Sprintf("Node(kind=%d)", int(n.kind))
	}
}
