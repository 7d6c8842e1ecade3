package internal

import (
	"bytes"
	"encoding/json"
)

// DatasetGroup is one group's consolidated records under its label.
type DatasetGroup struct {
	Label   string
	Records []ConversationRecord
}

// MergedDataset maps group labels to consolidated records while preserving
// group discovery order, which plain Go maps cannot do. Marshaling the same
// dataset twice produces byte-identical output.
type MergedDataset struct {
	groups []DatasetGroup
}

// Add appends a group. Labels are assumed unique by construction of the
// source collection; no collision handling is done.
func (d *MergedDataset) Add(label string, records []ConversationRecord) {
	d.groups = append(d.groups, DatasetGroup{Label: label, Records: records})
}

// Groups returns the dataset's groups in insertion order.
func (d *MergedDataset) Groups() []DatasetGroup {
	return d.groups
}

// Len returns the number of groups in the dataset.
func (d *MergedDataset) Len() int {
	return len(d.groups)
}

// MarshalJSON renders the dataset as a JSON object whose keys appear in
// group insertion order.
func (d *MergedDataset) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, group := range d.groups {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(group.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		records, err := json.Marshal(group.Records)
		if err != nil {
			return nil, err
		}
		buf.Write(records)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Merger combines every group of a capture source into one MergedDataset
// and, in the same pass, feeds the tool catalog.
type Merger struct {
	source CaptureSource
}

// NewMerger creates a Merger over a capture source.
func NewMerger(source CaptureSource) *Merger {
	return &Merger{source: source}
}

// Merge consolidates all groups. Group discovery order determines key order.
// Re-running over an unchanged source yields an identical dataset.
func (m *Merger) Merge() (*MergedDataset, *ToolCatalog, error) {
	groups, err := m.source.ListGroups()
	if err != nil {
		return nil, nil, err
	}

	assembler := NewAssembler(m.source)
	dataset := &MergedDataset{}
	catalog := NewToolCatalog()

	for _, group := range groups {
		records, tools, err := assembler.AssembleGroup(group)
		if err != nil {
			return nil, nil, &MergeError{Group: group, Err: err}
		}

		label, err := m.source.GroupLabel(group)
		if err != nil {
			LogWarn("Failed to resolve label for group %s: %v", group, err)
			label = group
		}

		dataset.Add(label, records)
		catalog.AddAll(tools)
	}

	return dataset, catalog, nil
}
