package vault

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/grovetools/notelink/pkg/models"
)

// Index is a sqlite-backed lookup over vault files, so exact and substring
// resolution do not have to rescan the vault on every request.
type Index struct {
	db *sql.DB
}

// NewIndex opens (or creates) the index database at dbPath.
func NewIndex(dbPath string) (*Index, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}

	idx := &Index{db: db}
	if err := idx.init(); err != nil {
		return nil, fmt.Errorf("initialize index: %w", err)
	}
	return idx, nil
}

// init creates the database schema
func (idx *Index) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS notes (
		path TEXT PRIMARY KEY,
		basename TEXT NOT NULL,
		aliases TEXT,
		indexed_at TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_notes_basename ON notes(basename COLLATE NOCASE);
	`

	_, err := idx.db.Exec(schema)
	return err
}

// Rebuild replaces the index contents with the given candidate set.
func (idx *Index) Rebuild(files []models.NoteFile) error {
	tx, err := idx.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec("DELETE FROM notes"); err != nil {
		return err
	}

	now := time.Now()
	for _, f := range files {
		aliases, err := json.Marshal(f.Aliases)
		if err != nil {
			return fmt.Errorf("marshal aliases for %s: %w", f.Path, err)
		}
		_, err = tx.Exec(`
			INSERT INTO notes (path, basename, aliases, indexed_at)
			VALUES (?, ?, ?, ?)
		`, f.Path, f.Basename, string(aliases), now)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LookupExact returns the file whose basename equals reference
// (case-insensitively), or nil. This is the host-native resolution the
// override must never shadow.
func (idx *Index) LookupExact(reference string) (*models.NoteFile, error) {
	rows, err := idx.db.Query(`
		SELECT path, basename, aliases FROM notes
		WHERE basename = ? COLLATE NOCASE
		ORDER BY basename
		LIMIT 1
	`, reference)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	files, err := scanNoteFiles(rows)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	return &files[0], nil
}

// Candidates returns files whose basename contains substr,
// case-insensitively, ordered by basename.
func (idx *Index) Candidates(substr string) ([]models.NoteFile, error) {
	rows, err := idx.db.Query(`
		SELECT path, basename, aliases FROM notes
		WHERE basename LIKE '%' || ? || '%'
		ORDER BY basename
	`, substr)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanNoteFiles(rows)
}

// All returns every indexed file, ordered by basename.
func (idx *Index) All() ([]models.NoteFile, error) {
	rows, err := idx.db.Query("SELECT path, basename, aliases FROM notes ORDER BY basename")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanNoteFiles(rows)
}

// Count returns the number of indexed files.
func (idx *Index) Count() (int, error) {
	var n int
	err := idx.db.QueryRow("SELECT COUNT(*) FROM notes").Scan(&n)
	return n, err
}

// Close closes the index
func (idx *Index) Close() error {
	return idx.db.Close()
}

func scanNoteFiles(rows *sql.Rows) ([]models.NoteFile, error) {
	var files []models.NoteFile
	for rows.Next() {
		var f models.NoteFile
		var aliases sql.NullString
		if err := rows.Scan(&f.Path, &f.Basename, &aliases); err != nil {
			return nil, err
		}
		if aliases.Valid && aliases.String != "" {
			if err := json.Unmarshal([]byte(aliases.String), &f.Aliases); err != nil {
				return nil, fmt.Errorf("unmarshal aliases for %s: %w", f.Path, err)
			}
		}
		files = append(files, f)
	}
	return files, rows.Err()
}
