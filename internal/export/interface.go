package export

import (
	"fmt"
	"io"

	"github.com/iksnae/sse-session/internal"
)

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(capture *internal.Capture, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "json":
		return &JSONExporter{}, nil
	case "jsonl":
		return &JSONLExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, jsonl, md, yaml)", format)
	}
}
