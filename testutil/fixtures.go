package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CaptureSpec describes one capture file to write into a fixture tree.
type CaptureSpec struct {
	Name string
	Body string
}

// GroupSpec describes one group directory in a fixture tree.
type GroupSpec struct {
	Name     string
	Label    string // written to user.txt when non-empty
	Captures []CaptureSpec
}

// CreateCaptureTree writes a capture root with the given groups and returns
// its path.
func CreateCaptureTree(t *testing.T, groups []GroupSpec) string {
	t.Helper()
	root := t.TempDir()

	for _, group := range groups {
		dir := filepath.Join(root, group.Name)
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create group directory: %v", err)
		}
		if group.Label != "" {
			if err := os.WriteFile(filepath.Join(dir, "user.txt"), []byte(group.Label+"\n"), 0644); err != nil {
				t.Fatalf("Failed to write label file: %v", err)
			}
		}
		for _, capture := range group.Captures {
			if err := os.WriteFile(filepath.Join(dir, capture.Name), []byte(capture.Body), 0644); err != nil {
				t.Fatalf("Failed to write capture %s: %v", capture.Name, err)
			}
		}
	}

	return root
}

// SimpleCapture is a small valid capture with one thinking, one text and
// one tool_use block.
const SimpleCapture = `event: message_start
data: {"type":"message_start","message":{"id":"msg_1"}}

data: {"type":"content_block_start","index":0,"content_block":{"type":"thinking"}}

data: {"type":"content_block_delta","index":0,"delta":{"type":"thinking_delta","thinking":"hm"}}

data: {"type":"content_block_delta","index":1,"delta":{"type":"text_delta","text":"Hel"}}

data: {"type":"content_block_delta","index":1,"delta":{"type":"text_delta","text":"lo"}}

data: {"type":"content_block_delta","index":2,"delta":{"type":"input_json_delta","partial_json":"{\"a\":"}}

data: {"type":"content_block_delta","index":2,"delta":{"type":"input_json_delta","partial_json":"1}"}}

data: {"type":"content_block_stop","index":0}

data: {"type":"content_block_stop","index":1}

data: {"type":"content_block_stop","index":2}

data: {"type":"message_stop"}
`

// CreateSimpleTree writes a two-group fixture tree exercising natural
// capture ordering.
func CreateSimpleTree(t *testing.T) string {
	t.Helper()
	return CreateCaptureTree(t, []GroupSpec{
		{
			Name:  "phase1",
			Label: "build the parser",
			Captures: []CaptureSpec{
				{Name: "req1.txt", Body: SimpleCapture},
				{Name: "req2.txt", Body: SimpleCapture},
				{Name: "req10.txt", Body: SimpleCapture},
			},
		},
		{
			Name: "phase2",
			Captures: []CaptureSpec{
				{Name: "req1.txt", Body: SimpleCapture},
			},
		},
	})
}
