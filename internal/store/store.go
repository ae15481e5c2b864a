// Package store persists the decision tree between sessions. The
// default backend is an SQLite database (whole-tree transactional
// rewrites, so an interrupted round never leaves a torn tree on
// disk); a YAML codec provides a human-editable archive form for
// export and import.
package store

import (
	"errors"

	"github.com/alighten/zoo/internal/tree"
)

// ErrCorruptState indicates the persisted tree references nodes that
// do not exist or do not form a valid tree.
var ErrCorruptState = errors.New("corrupt tree state")

// Store loads and saves whole trees. Load returns a nil root when no
// tree has been saved yet; the caller seeds the initial guess.
type Store interface {
	Load() (*tree.Node, error)
	Save(root *tree.Node) error
}
