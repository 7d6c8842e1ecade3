package internal

import (
	"os"
	"path/filepath"
	"strings"
)

// labelFile is the optional per-group file whose contents become the group's
// label in the merged dataset.
const labelFile = "user.txt"

// CaptureSource abstracts where captured streams live: a directory tree of
// txt files or a packed SQLite archive.
type CaptureSource interface {
	// ListGroups returns group names in natural order.
	ListGroups() ([]string, error)
	// GroupLabel resolves the label a group is keyed by in the merged
	// dataset. Falls back to the group name when no label was captured.
	GroupLabel(group string) (string, error)
	// ListCaptures returns a group's capture names in natural order.
	ListCaptures(group string) ([]string, error)
	// ReadCapture returns the full text of one capture.
	ReadCapture(group, name string) (string, error)
	Close() error
}

// DirSource reads captures from a directory tree: one subdirectory per
// group, *.txt captures inside.
type DirSource struct {
	root string
}

// NewDirSource creates a DirSource rooted at the given directory.
func NewDirSource(root string) (*DirSource, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &SourceError{Path: root, Op: "stat", Err: err}
	}
	if !info.IsDir() {
		return nil, &SourceError{Path: root, Op: "stat", Err: errNotDirectory}
	}
	return &DirSource{root: root}, nil
}

// ListGroups returns the root's subdirectory names in natural order.
func (s *DirSource) ListGroups() ([]string, error) {
	dirEntries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, &SourceError{Path: s.root, Op: "read", Err: err}
	}

	var groups []string
	for _, de := range dirEntries {
		if de.IsDir() {
			groups = append(groups, de.Name())
		}
	}
	SortNatural(groups)
	return groups, nil
}

// GroupLabel reads the group's label file, falling back to the group name.
func (s *DirSource) GroupLabel(group string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.root, group, labelFile))
	if err != nil {
		if os.IsNotExist(err) {
			return group, nil
		}
		return group, &SourceError{Path: filepath.Join(s.root, group, labelFile), Op: "read", Err: err}
	}
	label := strings.TrimSpace(string(data))
	if label == "" {
		return group, nil
	}
	return label, nil
}

// ListCaptures returns the group's *.txt capture names in natural order.
// The label file is not a capture.
func (s *DirSource) ListCaptures(group string) ([]string, error) {
	dirEntries, err := os.ReadDir(filepath.Join(s.root, group))
	if err != nil {
		return nil, &SourceError{Path: filepath.Join(s.root, group), Op: "read", Err: err}
	}

	var names []string
	for _, de := range dirEntries {
		if de.IsDir() || de.Name() == labelFile {
			continue
		}
		if strings.EqualFold(filepath.Ext(de.Name()), ".txt") {
			names = append(names, de.Name())
		}
	}
	SortNatural(names)
	return names, nil
}

// ReadCapture reads one capture file fully.
func (s *DirSource) ReadCapture(group, name string) (string, error) {
	path := filepath.Join(s.root, group, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &SourceError{Path: path, Op: "read", Err: err}
	}
	return string(data), nil
}

// Close is a no-op for directory sources.
func (s *DirSource) Close() error {
	return nil
}
