package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/alighten/zoo/internal/tree"
)

// DB wraps an SQLite database holding the persisted decision tree.
type DB struct {
	conn *sql.DB
	path string
	mu   sync.Mutex
}

// DefaultDBPath returns the XDG data path for the zoo database.
func DefaultDBPath() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, _ := os.UserHomeDir()
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "zoo", "zoo.db")
}

// Open opens the SQLite database at the given path, creating parent
// directories as needed, and applies pending migrations.
func Open(path string) (*DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	db := &DB{conn: conn, path: path}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.conn.Close()
}

// Path returns the path to the database file.
func (db *DB) Path() string {
	return db.path
}

// migrate applies all pending schema migrations.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_version table: %w", err)
	}

	var currentVersion int
	row := db.conn.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("get schema version: %w", err)
	}

	migrations := []struct {
		version int
		sql     string
	}{
		{1, migrationV1Nodes},
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}

		tx, err := db.conn.Begin()
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		if _, err := tx.Exec(m.sql); err != nil {
			tx.Rollback()
			return fmt.Errorf("apply migration v%d: %w", m.version, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", m.version); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration v%d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// Parent links are not stored; they are derivable from yes_id/no_id
// and rebuilt when the tree is loaded.
const migrationV1Nodes = `
CREATE TABLE IF NOT EXISTS nodes (
	id TEXT PRIMARY KEY,
	kind TEXT NOT NULL,
	animal TEXT,
	question TEXT,
	yes_id TEXT,
	no_id TEXT
);

CREATE TABLE IF NOT EXISTS tree_meta (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// Save rewrites the whole tree in one transaction, replacing whatever
// was stored before.
func (db *DB) Save(root *tree.Node) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if err := tree.Validate(root); err != nil {
		return fmt.Errorf("save tree: %w", err)
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM nodes"); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear nodes: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM tree_meta"); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear meta: %w", err)
	}

	rootID, err := insertNode(tx, root)
	if err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec("INSERT INTO tree_meta (key, value) VALUES ('root', ?)", rootID); err != nil {
		tx.Rollback()
		return fmt.Errorf("record root: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// insertNode stores n and its subtree, returning n's generated row ID.
func insertNode(tx *sql.Tx, n *tree.Node) (string, error) {
	id := uuid.New().String()
	switch n.Kind() {
	case tree.KindGuess:
		_, err := tx.Exec(
			"INSERT INTO nodes (id, kind, animal) VALUES (?, ?, ?)",
			id, n.Kind().String(), n.Animal())
		if err != nil {
			return "", fmt.Errorf("insert %s: %w", n, err)
		}
	case tree.KindQuestion:
		yesID, err := insertNode(tx, n.Yes())
		if err != nil {
			return "", err
		}
		noID, err := insertNode(tx, n.No())
		if err != nil {
			return "", err
		}
		_, err = tx.Exec(
			"INSERT INTO nodes (id, kind, question, yes_id, no_id) VALUES (?, ?, ?, ?, ?)",
			id, n.Kind().String(), n.Question(), yesID, noID)
		if err != nil {
			return "", fmt.Errorf("insert %s: %w", n, err)
		}
	}
	return id, nil
}

// nodeRow mirrors one row of the nodes table.
type nodeRow struct {
	id       string
	kind     string
	animal   sql.NullString
	question sql.NullString
	yesID    sql.NullString
	noID     sql.NullString
}

// Load reads the stored tree, relinking children and rebuilding parent
// pointers through the tree constructors. Returns a nil root when
// nothing has been saved yet.
func (db *DB) Load() (*tree.Node, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var rootID string
	err := db.conn.QueryRow("SELECT value FROM tree_meta WHERE key = 'root'").Scan(&rootID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read root id: %w", err)
	}

	rows, err := db.conn.Query("SELECT id, kind, animal, question, yes_id, no_id FROM nodes")
	if err != nil {
		return nil, fmt.Errorf("read nodes: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]nodeRow)
	for rows.Next() {
		var r nodeRow
		if err := rows.Scan(&r.id, &r.kind, &r.animal, &r.question, &r.yesID, &r.noID); err != nil {
			return nil, fmt.Errorf("scan node: %w", err)
		}
		byID[r.id] = r
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read nodes: %w", err)
	}

	root, err := buildNode(byID, rootID, make(map[string]bool))
	if err != nil {
		return nil, err
	}
	if err := tree.Validate(root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	return root, nil
}

// buildNode reconstructs the subtree rooted at id. The visiting set
// guards against reference cycles in corrupt data.
func buildNode(byID map[string]nodeRow, id string, visiting map[string]bool) (*tree.Node, error) {
	if visiting[id] {
		return nil, fmt.Errorf("%w: node %s references itself", ErrCorruptState, id)
	}
	visiting[id] = true
	defer delete(visiting, id)

	r, ok := byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: missing node %s", ErrCorruptState, id)
	}

	switch r.kind {
	case tree.KindGuess.String():
		n, err := tree.NewGuess(r.animal.String)
		if err != nil {
			return nil, fmt.Errorf("%w: node %s: %v", ErrCorruptState, id, err)
		}
		return n, nil
	case tree.KindQuestion.String():
		yes, err := buildNode(byID, r.yesID.String, visiting)
		if err != nil {
			return nil, err
		}
		no, err := buildNode(byID, r.noID.String, visiting)
		if err != nil {
			return nil, err
		}
		n, err := tree.NewQuestion(r.question.String, yes, no)
		if err != nil {
			return nil, fmt.Errorf("%w: node %s: %v", ErrCorruptState, id, err)
		}
		return n, nil
	default:
		return nil, fmt.Errorf("%w: node %s has unknown kind %q", ErrCorruptState, id, r.kind)
	}
}

// Reset drops the stored tree, leaving an empty database. The next
// Load returns a nil root and the game reseeds.
func (db *DB) Reset() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM nodes"); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear nodes: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM tree_meta"); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear meta: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}
	return nil
}
