package internal

import (
	"errors"
	"fmt"
)

var errNotDirectory = errors.New("not a directory")

// SourceError represents errors accessing a capture source
type SourceError struct {
	Path string
	Op   string // "stat", "read", "open", "query"
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// ArchiveError represents errors building or reading a capture archive
type ArchiveError struct {
	Path string
	Op   string // "create", "insert", "query"
	Err  error
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("archive error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ArchiveError) Unwrap() error {
	return e.Err
}

// MergeError represents errors assembling or writing the merged dataset
type MergeError struct {
	Group string
	Err   error
}

func (e *MergeError) Error() string {
	return fmt.Sprintf("merge error [%s]: %v", e.Group, e.Err)
}

func (e *MergeError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
