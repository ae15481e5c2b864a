package tree

import (
	"errors"
	"fmt"
)

// ErrInvalidTree indicates a loaded or imported tree violates the
// structural invariants.
var ErrInvalidTree = errors.New("invalid tree structure")

// Validate walks the tree from root and checks the structural
// invariants: the root has no parent, every question owns two children
// whose parent links point back at it, payloads are non-empty, and no
// node is reachable twice (no sharing, no cycles).
func Validate(root *Node) error {
	if root == nil {
		return fmt.Errorf("nil root: %w", ErrInvalidTree)
	}
	if root.parent != nil {
		return fmt.Errorf("root %s has a parent: %w", root, ErrInvalidTree)
	}

	seen := make(map[*Node]bool)
	var visit func(n *Node) error
	visit = func(n *Node) error {
		if seen[n] {
			return fmt.Errorf("node %s reachable twice: %w", n, ErrInvalidTree)
		}
		seen[n] = true

		switch n.kind {
		case KindGuess:
			if n.animal == "" {
				return fmt.Errorf("guess with empty animal name: %w", ErrInvalidTree)
			}
		case KindQuestion:
			if n.question == "" {
				return fmt.Errorf("question with empty text: %w", ErrInvalidTree)
			}
			if n.yes == nil || n.no == nil {
				return fmt.Errorf("question %s missing a child: %w", n, ErrInvalidTree)
			}
			if n.yes.parent != n || n.no.parent != n {
				return fmt.Errorf("question %s has a child with a stale parent link: %w", n, ErrInvalidTree)
			}
			if err := visit(n.yes); err != nil {
				return err
			}
			if err := visit(n.no); err != nil {
				return err
			}
		default:
			return fmt.Errorf("node with unknown kind %d: %w", int(n.kind), ErrInvalidTree)
		}
		return nil
	}

	return visit(root)
}

// Count returns the total number of nodes reachable from root.
func Count(root *Node) int {
	if root == nil {
		return 0
	}
	if root.kind == KindGuess {
		return 1
	}
	return 1 + Count(root.yes) + Count(root.no)
}

// Leaves returns the number of guess leaves reachable from root, which
// is the number of animals the tree knows.
func Leaves(root *Node) int {
	if root == nil {
		return 0
	}
	if root.kind == KindGuess {
		return 1
	}
	return Leaves(root.yes) + Leaves(root.no)
}

// Depth returns the length of the longest root-to-leaf path, counted
// in nodes. A single guess has depth 1.
func Depth(root *Node) int {
	if root == nil {
		return 0
	}
	if root.kind == KindGuess {
		return 1
	}
	yes, no := Depth(root.yes), Depth(root.no)
	if yes > no {
		return 1 + yes
	}
	return 1 + no
}
