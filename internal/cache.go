package internal

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// indexVersion is bumped when the index layout changes.
const indexVersion = "1.0"

// IndexMetadata records which source an index was built from.
type IndexMetadata struct {
	SourcePath    string    `yaml:"source_path"`
	SourceModTime time.Time `yaml:"source_mod_time"`
	Version       string    `yaml:"version"`
	CreatedAt     time.Time `yaml:"created_at"`
}

// GroupIndexEntry summarizes one group of the merged dataset.
type GroupIndexEntry struct {
	Name         string `yaml:"name"`
	Label        string `yaml:"label,omitempty"`
	CaptureCount int    `yaml:"capture_count"`
	EntryCount   int    `yaml:"entry_count"`
}

// DatasetIndex is the YAML summary written next to a merged dataset so that
// listing does not require re-consolidating every capture.
type DatasetIndex struct {
	Groups   []GroupIndexEntry `yaml:"groups"`
	Metadata IndexMetadata     `yaml:"metadata"`
}

// IndexManager reads and writes the dataset index file.
type IndexManager struct {
	path string
}

// NewIndexManager creates an IndexManager for the given index file path.
func NewIndexManager(path string) *IndexManager {
	return &IndexManager{path: path}
}

// Path returns the index file path.
func (im *IndexManager) Path() string {
	return im.path
}

// Load reads and decodes the index file.
func (im *IndexManager) Load() (*DatasetIndex, error) {
	data, err := os.ReadFile(im.path)
	if err != nil {
		return nil, err
	}

	var index DatasetIndex
	if err := yaml.Unmarshal(data, &index); err != nil {
		return nil, &SourceError{Path: im.path, Op: "parse", Err: err}
	}

	return &index, nil
}

// Save encodes and writes the index file.
func (im *IndexManager) Save(index *DatasetIndex) error {
	data, err := yaml.Marshal(index)
	if err != nil {
		return &SourceError{Path: im.path, Op: "write", Err: err}
	}
	return os.WriteFile(im.path, data, 0644)
}

// IsValid reports whether the index still matches the source: same path and
// unchanged modification time. Any read failure counts as invalid, not as
// an error.
func (im *IndexManager) IsValid(sourcePath string) bool {
	index, err := im.Load()
	if err != nil {
		return false
	}

	if index.Metadata.Version != indexVersion || index.Metadata.SourcePath != sourcePath {
		return false
	}

	info, err := os.Stat(sourcePath)
	if err != nil {
		return false
	}

	return index.Metadata.SourceModTime.Equal(info.ModTime())
}

// BuildIndex summarizes a merged dataset into an index for the source.
func BuildIndex(sourcePath string, groups []string, dataset *MergedDataset) *DatasetIndex {
	index := &DatasetIndex{
		Metadata: IndexMetadata{
			SourcePath: sourcePath,
			Version:    indexVersion,
			CreatedAt:  time.Now(),
		},
	}
	if info, err := os.Stat(sourcePath); err == nil {
		index.Metadata.SourceModTime = info.ModTime()
	}

	for i, group := range dataset.Groups() {
		name := group.Label
		if i < len(groups) {
			name = groups[i]
		}
		entryCount := 0
		for _, record := range group.Records {
			entryCount += len(record)
		}
		index.Groups = append(index.Groups, GroupIndexEntry{
			Name:         name,
			Label:        group.Label,
			CaptureCount: len(group.Records),
			EntryCount:   entryCount,
		})
	}

	return index
}
