package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/sse-session/internal"
)

// JSONLExporter exports captures in JSONL format (one entry per line)
type JSONLExporter struct{}

// Export exports a capture to JSONL format
func (e *JSONLExporter) Export(capture *internal.Capture, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	for _, entry := range capture.Entries {
		if err := enc.Encode(entry); err != nil {
			return fmt.Errorf("failed to encode entry: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
