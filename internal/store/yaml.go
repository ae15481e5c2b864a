package store

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/alighten/zoo/internal/tree"
)

// archiveNode is the YAML form of a tree node. Exactly one of animal
// or question is set; parent links are omitted and rebuilt on import.
type archiveNode struct {
	Animal   string       `yaml:"animal,omitempty"`
	Question string       `yaml:"question,omitempty"`
	Yes      *archiveNode `yaml:"yes,omitempty"`
	No       *archiveNode `yaml:"no,omitempty"`
}

// EncodeYAML writes the tree to w as a nested YAML document.
func EncodeYAML(w io.Writer, root *tree.Node) error {
	if err := tree.Validate(root); err != nil {
		return fmt.Errorf("export tree: %w", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toArchive(root)); err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}
	return enc.Close()
}

// DecodeYAML reads a tree from w's YAML form, validating the result.
func DecodeYAML(r io.Reader) (*tree.Node, error) {
	var doc archiveNode
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	root, err := fromArchive(&doc)
	if err != nil {
		return nil, err
	}
	if err := tree.Validate(root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	return root, nil
}

func toArchive(n *tree.Node) *archiveNode {
	switch n.Kind() {
	case tree.KindGuess:
		return &archiveNode{Animal: n.Animal()}
	case tree.KindQuestion:
		return &archiveNode{
			Question: n.Question(),
			Yes:      toArchive(n.Yes()),
			No:       toArchive(n.No()),
		}
	default:
		return nil
	}
}

func fromArchive(a *archiveNode) (*tree.Node, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: missing node", ErrCorruptState)
	}
	switch {
	case a.Question != "" && a.Animal != "":
		return nil, fmt.Errorf("%w: node is both a guess and a question", ErrCorruptState)
	case a.Question != "":
		yes, err := fromArchive(a.Yes)
		if err != nil {
			return nil, err
		}
		no, err := fromArchive(a.No)
		if err != nil {
			return nil, err
		}
		n, err := tree.NewQuestion(a.Question, yes, no)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
		}
		return n, nil
	case a.Animal != "":
		if a.Yes != nil || a.No != nil {
			return nil, fmt.Errorf("%w: guess %q has children", ErrCorruptState, a.Animal)
		}
		n, err := tree.NewGuess(a.Animal)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
		}
		return n, nil
	default:
		return nil, fmt.Errorf("%w: node has neither animal nor question", ErrCorruptState)
	}
}
