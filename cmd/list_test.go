package cmd

import (
	"path/filepath"
	"testing"

	"github.com/iksnae/sse-session/internal"
	"github.com/iksnae/sse-session/testutil"
)

const defaultIndexPath = "./merged/index.yaml"

func TestListCommand(t *testing.T) {
	root := testutil.CreateSimpleTree(t)

	if err := runCommand(t, "list", "--source", root); err != nil {
		t.Fatalf("list failed: %v", err)
	}
}

func TestListCommand_IndexPreferredByDefault(t *testing.T) {
	if got := listCmd.Flags().Lookup("index").DefValue; got != defaultIndexPath {
		t.Errorf("index flag default = %q, want %q", got, defaultIndexPath)
	}
}

func TestLoadGroupEntries_DefaultIndexMissingFallsBackToScan(t *testing.T) {
	root := testutil.CreateSimpleTree(t)
	sourcePath = root
	listIndexPath = defaultIndexPath
	defer func() { sourcePath = "" }()

	entries, err := loadGroupEntries()
	if err != nil {
		t.Fatalf("loadGroupEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected scan of the source (2 groups), got %d", len(entries))
	}
}

func TestLoadGroupEntries_Scan(t *testing.T) {
	root := testutil.CreateSimpleTree(t)
	sourcePath = root
	listIndexPath = ""
	defer func() {
		sourcePath = ""
		listIndexPath = defaultIndexPath
	}()

	entries, err := loadGroupEntries()
	if err != nil {
		t.Fatalf("loadGroupEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(entries))
	}
	if entries[0].Name != "phase1" || entries[0].Label != "build the parser" {
		t.Errorf("Group 0: got %s / %s", entries[0].Name, entries[0].Label)
	}
	if entries[0].CaptureCount != 3 {
		t.Errorf("Expected 3 captures in phase1, got %d", entries[0].CaptureCount)
	}
	if entries[0].EntryCount != -1 {
		t.Errorf("Scanned entries report no entry count, got %d", entries[0].EntryCount)
	}
}

func TestLoadGroupEntries_PrefersValidIndex(t *testing.T) {
	root := testutil.CreateSimpleTree(t)
	indexPath := filepath.Join(t.TempDir(), "index.yaml")

	dataset := &internal.MergedDataset{}
	dataset.Add("build the parser", []internal.ConversationRecord{
		{{Type: internal.EntryText, Content: "Hello"}},
	})
	index := internal.BuildIndex(root, []string{"phase1"}, dataset)
	if err := internal.NewIndexManager(indexPath).Save(index); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	sourcePath = root
	listIndexPath = indexPath
	defer func() {
		sourcePath = ""
		listIndexPath = defaultIndexPath
	}()

	entries, err := loadGroupEntries()
	if err != nil {
		t.Fatalf("loadGroupEntries failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected the index's single group, got %d", len(entries))
	}
	if entries[0].EntryCount != 1 {
		t.Errorf("Expected entry count from index, got %d", entries[0].EntryCount)
	}
}

func TestLoadGroupEntries_StaleIndexFallsBackToScan(t *testing.T) {
	root := testutil.CreateSimpleTree(t)
	other := testutil.CreateCaptureTree(t, []testutil.GroupSpec{{Name: "solo"}})
	indexPath := filepath.Join(t.TempDir(), "index.yaml")

	// Index built against a different source path is invalid for root.
	dataset := &internal.MergedDataset{}
	dataset.Add("solo", nil)
	index := internal.BuildIndex(other, []string{"solo"}, dataset)
	if err := internal.NewIndexManager(indexPath).Save(index); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	sourcePath = root
	listIndexPath = indexPath
	defer func() {
		sourcePath = ""
		listIndexPath = defaultIndexPath
	}()

	entries, err := loadGroupEntries()
	if err != nil {
		t.Fatalf("loadGroupEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected scan of the real source (2 groups), got %d", len(entries))
	}
}
