package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/sse-session/internal"
)

// MarkdownExporter exports captures in Markdown format
type MarkdownExporter struct{}

// Export exports a capture to Markdown format
func (e *MarkdownExporter) Export(capture *internal.Capture, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# Capture %s\n\n", capture.Name)

	if capture.Group != "" {
		_, _ = fmt.Fprintf(w, "**Group:** %s  \n", capture.Group)
	}
	_, _ = fmt.Fprintf(w, "**Entries:** %d\n\n", len(capture.Entries))
	_, _ = fmt.Fprintf(w, "---\n\n")

	for i, entry := range capture.Entries {
		switch entry.Type {
		case internal.EntryText:
			_, _ = fmt.Fprintf(w, "**text:**\n\n%s\n\n", entry.Content)
		case internal.EntryThinking:
			_, _ = fmt.Fprintf(w, "**thinking:**\n\n> %s\n\n", entry.Content)
		case internal.EntryToolUse:
			_, _ = fmt.Fprintf(w, "**tool_use:**\n\n```json\n%s\n```\n\n", formatDelta(entry.Delta))
		}

		if i < len(capture.Entries)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}

	return nil
}

// formatDelta pretty-prints the raw delta, falling back to the raw bytes.
func formatDelta(delta json.RawMessage) string {
	var buf []byte
	var obj interface{}
	if err := json.Unmarshal(delta, &obj); err == nil {
		buf, _ = json.MarshalIndent(obj, "", "  ")
	}
	if buf == nil {
		buf = delta
	}
	return string(buf)
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
