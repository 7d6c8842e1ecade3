package internal

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/iksnae/sse-session/testutil"
)

func TestMerge_GroupsKeyedByLabel(t *testing.T) {
	root := testutil.CreateSimpleTree(t)

	source, _ := NewDirSource(root)
	defer source.Close()

	dataset, _, err := NewMerger(source).Merge()
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if dataset.Len() != 2 {
		t.Fatalf("Expected 2 groups, got %d", dataset.Len())
	}

	groups := dataset.Groups()
	if groups[0].Label != "build the parser" {
		t.Errorf("Expected first group label %q, got %q", "build the parser", groups[0].Label)
	}
	if len(groups[0].Records) != 3 {
		t.Errorf("Expected 3 records in first group, got %d", len(groups[0].Records))
	}
	// phase2 has no label file so the group name is the key.
	if groups[1].Label != "phase2" {
		t.Errorf("Expected second group label %q, got %q", "phase2", groups[1].Label)
	}
}

func TestMerge_ByteIdenticalOnUnchangedSource(t *testing.T) {
	root := testutil.CreateSimpleTree(t)

	source, _ := NewDirSource(root)
	defer source.Close()

	merger := NewMerger(source)

	first, _, err := merger.Merge()
	if err != nil {
		t.Fatalf("First merge failed: %v", err)
	}
	second, _, err := merger.Merge()
	if err != nil {
		t.Fatalf("Second merge failed: %v", err)
	}

	firstJSON, err := json.MarshalIndent(first, "", "  ")
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	secondJSON, err := json.MarshalIndent(second, "", "  ")
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !bytes.Equal(firstJSON, secondJSON) {
		t.Error("Merging an unchanged source twice must produce byte-identical output")
	}
}

func TestMergedDataset_MarshalPreservesInsertionOrder(t *testing.T) {
	dataset := &MergedDataset{}
	dataset.Add("zeta", []ConversationRecord{})
	dataset.Add("alpha", []ConversationRecord{})
	dataset.Add("mid", []ConversationRecord{})

	data, err := json.Marshal(dataset)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"zeta":[],"alpha":[],"mid":[]}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestMergedDataset_MarshalRecords(t *testing.T) {
	dataset := &MergedDataset{}
	dataset.Add("g", []ConversationRecord{
		{{Type: EntryText, Content: "hi"}},
		{},
	})

	data, err := json.Marshal(dataset)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"g":[[{"type":"text","content":"hi"}],[]]}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestMerge_FeedsToolCatalog(t *testing.T) {
	read := TestToolDefinition("Read")
	root := testutil.CreateCaptureTree(t, []testutil.GroupSpec{
		{
			Name: "phase1",
			Captures: []testutil.CaptureSpec{
				{Name: "req1.txt", Body: BuildCapture(ToolsLine(read))},
			},
		},
		{
			Name: "phase2",
			Captures: []testutil.CaptureSpec{
				{Name: "req1.txt", Body: BuildCapture(ToolsLine(read, TestToolDefinition("Edit")))},
			},
		},
	})

	source, _ := NewDirSource(root)
	defer source.Close()

	_, catalog, err := NewMerger(source).Merge()
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if catalog.Len() != 2 {
		t.Errorf("Expected 2 unique tools across groups, got %d", catalog.Len())
	}
}

func TestMerge_EmptySource(t *testing.T) {
	root := testutil.CreateCaptureTree(t, nil)

	source, _ := NewDirSource(root)
	defer source.Close()

	dataset, catalog, err := NewMerger(source).Merge()
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if dataset.Len() != 0 {
		t.Errorf("Expected empty dataset, got %d groups", dataset.Len())
	}

	data, err := json.Marshal(dataset)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Empty dataset should marshal as {}, got %s", data)
	}

	data, err = json.Marshal(catalog)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Empty catalog should marshal as [], got %s", data)
	}
}
