package export

import (
	"testing"
)

func TestNewExporter(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
		wantErr bool
	}{
		{format: "json", wantExt: "json"},
		{format: "jsonl", wantExt: "jsonl"},
		{format: "md", wantExt: "md"},
		{format: "markdown", wantExt: "md"},
		{format: "yaml", wantExt: "yaml"},
		{format: "xml", wantErr: true},
		{format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			exporter, err := NewExporter(tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewExporter(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := exporter.Extension(); got != tt.wantExt {
				t.Errorf("Extension() = %q, want %q", got, tt.wantExt)
			}
		})
	}
}
