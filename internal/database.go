package internal

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

// OpenArchive opens a capture archive in read-only mode.
func OpenArchive(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, &ArchiveError{Path: path, Op: "open", Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &ArchiveError{Path: path, Op: "open", Err: err}
	}

	return db, nil
}

// ArchiveSource reads captures from a packed SQLite archive. Group and
// capture order is the natural order recorded when the archive was built.
type ArchiveSource struct {
	db   *sql.DB
	path string
}

// NewArchiveSource opens the archive at path as a CaptureSource.
func NewArchiveSource(path string) (*ArchiveSource, error) {
	db, err := OpenArchive(path)
	if err != nil {
		return nil, err
	}
	return &ArchiveSource{db: db, path: path}, nil
}

// ListGroups returns group names in archived order.
func (s *ArchiveSource) ListGroups() ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM groups ORDER BY position")
	if err != nil {
		return nil, &ArchiveError{Path: s.path, Op: "query", Err: err}
	}
	defer rows.Close()

	var groups []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, &ArchiveError{Path: s.path, Op: "query", Err: err}
		}
		groups = append(groups, name)
	}
	if err := rows.Err(); err != nil {
		return nil, &ArchiveError{Path: s.path, Op: "query", Err: err}
	}
	return groups, nil
}

// GroupLabel returns the archived label, falling back to the group name.
func (s *ArchiveSource) GroupLabel(group string) (string, error) {
	var label string
	err := s.db.QueryRow("SELECT label FROM groups WHERE name = ?", group).Scan(&label)
	if err == sql.ErrNoRows || (err == nil && label == "") {
		return group, nil
	}
	if err != nil {
		return group, &ArchiveError{Path: s.path, Op: "query", Err: err}
	}
	return label, nil
}

// ListCaptures returns a group's capture names in archived order.
func (s *ArchiveSource) ListCaptures(group string) ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM captures WHERE group_name = ? ORDER BY position", group)
	if err != nil {
		return nil, &ArchiveError{Path: s.path, Op: "query", Err: err}
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, &ArchiveError{Path: s.path, Op: "query", Err: err}
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, &ArchiveError{Path: s.path, Op: "query", Err: err}
	}
	return names, nil
}

// ReadCapture returns the archived capture body.
func (s *ArchiveSource) ReadCapture(group, name string) (string, error) {
	var body string
	err := s.db.QueryRow("SELECT body FROM captures WHERE group_name = ? AND name = ?", group, name).Scan(&body)
	if err != nil {
		return "", &ArchiveError{Path: s.path, Op: "query", Err: err}
	}
	return body, nil
}

// Close closes the underlying database.
func (s *ArchiveSource) Close() error {
	return s.db.Close()
}

const archiveSchema = `
CREATE TABLE IF NOT EXISTS groups (
	name TEXT PRIMARY KEY,
	label TEXT NOT NULL,
	position INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS captures (
	group_name TEXT NOT NULL,
	name TEXT NOT NULL,
	position INTEGER NOT NULL,
	body TEXT NOT NULL,
	PRIMARY KEY (group_name, name)
);`

// WriteArchive packs every group and capture of src into a SQLite archive
// at path, preserving natural order via explicit positions. An unreadable
// capture is archived as empty rather than aborting the pack.
func WriteArchive(src CaptureSource, path string) (groupCount, captureCount int, err error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return 0, 0, &ArchiveError{Path: path, Op: "create", Err: err}
	}
	defer db.Close()

	if _, err := db.Exec(archiveSchema); err != nil {
		return 0, 0, &ArchiveError{Path: path, Op: "create", Err: err}
	}

	groups, err := src.ListGroups()
	if err != nil {
		return 0, 0, err
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, 0, &ArchiveError{Path: path, Op: "create", Err: err}
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for gi, group := range groups {
		label, labelErr := src.GroupLabel(group)
		if labelErr != nil {
			LogWarn("Failed to read label for group %s: %v", group, labelErr)
			label = group
		}
		if _, err = tx.Exec("INSERT OR REPLACE INTO groups (name, label, position) VALUES (?, ?, ?)", group, label, gi); err != nil {
			return 0, 0, &ArchiveError{Path: path, Op: "insert", Err: err}
		}
		groupCount++

		names, listErr := src.ListCaptures(group)
		if listErr != nil {
			LogWarn("Failed to list captures for group %s: %v", group, listErr)
			continue
		}
		for ci, name := range names {
			body, readErr := src.ReadCapture(group, name)
			if readErr != nil {
				LogWarn("Failed to read capture %s/%s: %v", group, name, readErr)
				body = ""
			}
			if _, err = tx.Exec("INSERT OR REPLACE INTO captures (group_name, name, position, body) VALUES (?, ?, ?, ?)", group, name, ci, body); err != nil {
				return 0, 0, &ArchiveError{Path: path, Op: "insert", Err: err}
			}
			captureCount++
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, 0, &ArchiveError{Path: path, Op: "insert", Err: err}
	}
	return groupCount, captureCount, nil
}
