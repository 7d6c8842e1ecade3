package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONLExporter_Export(t *testing.T) {
	var buf bytes.Buffer
	exporter := &JSONLExporter{}

	if err := exporter.Export(testCapture(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Export() produced %d lines, want 3", len(lines))
	}

	for i, line := range lines {
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Errorf("line %d is not valid JSON: %v", i, err)
		}
	}
}
