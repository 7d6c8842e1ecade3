package internal

import (
	"os"
	"path/filepath"
	"strings"
)

// OpenSource resolves a source path into the appropriate backend: a SQLite
// archive for .db/.sqlite files, a directory source otherwise. An empty
// path means the current working directory, matching how captures are
// usually processed in place.
func OpenSource(path string) (CaptureSource, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, &SourceError{Path: ".", Op: "stat", Err: err}
		}
		path = cwd
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, &SourceError{Path: path, Op: "stat", Err: err}
	}

	if info.IsDir() {
		return NewDirSource(path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return NewArchiveSource(path)
	}
	return nil, &SourceError{Path: path, Op: "open", Err: errNotDirectory}
}
