package export

import (
	"bytes"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestYAMLExporter_Export(t *testing.T) {
	var buf bytes.Buffer
	exporter := &YAMLExporter{}

	if err := exporter.Export(testCapture(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var entries []map[string]interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &entries); err != nil {
		t.Fatalf("Export() produced invalid YAML: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("Export() produced %d entries, want 3", len(entries))
	}
	if entries[1]["content"] != "Hello" {
		t.Errorf("Export() text content = %v, want Hello", entries[1]["content"])
	}
	if _, ok := entries[2]["delta"].(map[string]interface{}); !ok {
		t.Errorf("Export() tool_use delta should decode to a mapping, got %T", entries[2]["delta"])
	}
}
