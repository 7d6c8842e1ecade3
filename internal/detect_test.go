package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iksnae/sse-session/testutil"
)

func TestOpenSource_Directory(t *testing.T) {
	root := testutil.CreateSimpleTree(t)

	source, err := OpenSource(root)
	if err != nil {
		t.Fatalf("OpenSource failed: %v", err)
	}
	defer source.Close()

	if _, ok := source.(*DirSource); !ok {
		t.Errorf("Expected *DirSource, got %T", source)
	}
}

func TestOpenSource_Archive(t *testing.T) {
	root := testutil.CreateSimpleTree(t)
	dir, _ := NewDirSource(root)
	defer dir.Close()

	archivePath := filepath.Join(t.TempDir(), "captures.db")
	if _, _, err := WriteArchive(dir, archivePath); err != nil {
		t.Fatalf("WriteArchive failed: %v", err)
	}

	source, err := OpenSource(archivePath)
	if err != nil {
		t.Fatalf("OpenSource failed: %v", err)
	}
	defer source.Close()

	if _, ok := source.(*ArchiveSource); !ok {
		t.Errorf("Expected *ArchiveSource, got %T", source)
	}
}

func TestOpenSource_MissingPath(t *testing.T) {
	if _, err := OpenSource(filepath.Join(t.TempDir(), "nowhere")); err == nil {
		t.Error("Expected error for a missing path")
	}
}

func TestOpenSource_UnrecognizedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.txt")
	if err := os.WriteFile(path, []byte("data: {}\n"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, err := OpenSource(path); err == nil {
		t.Error("Expected error for a plain file that is not an archive")
	}
}

func TestOpenSource_EmptyPathUsesWorkingDirectory(t *testing.T) {
	root := testutil.CreateSimpleTree(t)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(root); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	defer os.Chdir(wd)

	source, err := OpenSource("")
	if err != nil {
		t.Fatalf("OpenSource failed: %v", err)
	}
	defer source.Close()

	groups, err := source.ListGroups()
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(groups) != 2 {
		t.Errorf("Expected 2 groups from the working directory, got %d", len(groups))
	}
}
