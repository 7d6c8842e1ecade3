package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/sse-session/internal"
)

// JSONExporter writes the canonical consolidated format: a pretty-printed
// JSON array of entries, as downstream viewers consume it.
type JSONExporter struct{}

// Export exports a capture's entries to JSON format
func (e *JSONExporter) Export(capture *internal.Capture, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	entries := capture.Entries
	if entries == nil {
		entries = internal.ConversationRecord{}
	}
	return enc.Encode(entries)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
