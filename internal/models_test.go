package internal

import (
	"encoding/json"
	"testing"
)

func TestEntry_MarshalShapes(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{
			name:  "text",
			entry: Entry{Type: EntryText, Content: "hi"},
			want:  `{"type":"text","content":"hi"}`,
		},
		{
			name:  "text with empty content keeps the key",
			entry: Entry{Type: EntryText, Content: ""},
			want:  `{"type":"text","content":""}`,
		},
		{
			name:  "thinking with empty content keeps the key",
			entry: Entry{Type: EntryThinking, Content: ""},
			want:  `{"type":"thinking","content":""}`,
		},
		{
			name:  "tool_use carries only the delta",
			entry: Entry{Type: EntryToolUse, Delta: json.RawMessage(`{"partial_json":"1}"}`)},
			want:  `{"type":"tool_use","delta":{"partial_json":"1}"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.entry)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestToolDefinition_Complete(t *testing.T) {
	if !TestToolDefinition("Read").Complete() {
		t.Error("Expected full triple to be complete")
	}
	if (ToolDefinition{Name: "Read", Description: "d"}).Complete() {
		t.Error("Expected definition without schema to be incomplete")
	}
	if (ToolDefinition{Name: "Read", InputSchema: json.RawMessage(`{}`)}).Complete() {
		t.Error("Expected definition without description to be incomplete")
	}
	if (ToolDefinition{Description: "d", InputSchema: json.RawMessage(`{}`)}).Complete() {
		t.Error("Expected definition without name to be incomplete")
	}
}
