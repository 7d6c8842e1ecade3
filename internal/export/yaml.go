package export

import (
	"io"

	"github.com/iksnae/sse-session/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports captures in YAML format
type YAMLExporter struct{}

// yamlEntry keeps the tool-use delta readable in YAML output instead of a
// raw byte dump.
type yamlEntry struct {
	Type    string      `yaml:"type"`
	Content string      `yaml:"content,omitempty"`
	Delta   interface{} `yaml:"delta,omitempty"`
}

// Export exports a capture to YAML format
func (e *YAMLExporter) Export(capture *internal.Capture, w io.Writer) error {
	entries := make([]yamlEntry, 0, len(capture.Entries))
	for _, entry := range capture.Entries {
		ye := yamlEntry{Type: entry.Type, Content: entry.Content}
		if len(entry.Delta) > 0 {
			var delta interface{}
			if err := yaml.Unmarshal(entry.Delta, &delta); err == nil {
				ye.Delta = delta
			} else {
				ye.Delta = string(entry.Delta)
			}
		}
		entries = append(entries, ye)
	}

	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(entries)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
