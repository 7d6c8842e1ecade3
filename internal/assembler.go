package internal

// Assembler turns every capture of a group into a ConversationRecord,
// one capture at a time, in the source's natural capture order.
type Assembler struct {
	source CaptureSource
}

// NewAssembler creates an Assembler over a capture source.
func NewAssembler(source CaptureSource) *Assembler {
	return &Assembler{source: source}
}

// AssembleGroup consolidates every capture in the group, in order. A capture
// that cannot be read yields an empty record in its position rather than
// aborting the group. Tool definitions recovered from the captures are
// returned in first-seen order.
func (a *Assembler) AssembleGroup(group string) ([]ConversationRecord, []ToolDefinition, error) {
	names, err := a.source.ListCaptures(group)
	if err != nil {
		return nil, nil, err
	}

	records := make([]ConversationRecord, 0, len(names))
	var tools []ToolDefinition
	for _, name := range names {
		text, err := a.source.ReadCapture(group, name)
		if err != nil {
			LogWarn("Failed to read capture %s/%s: %v", group, name, err)
			records = append(records, ConversationRecord{})
			continue
		}

		record, defs := Consolidate(text)
		records = append(records, record)
		tools = append(tools, defs...)
	}

	return records, tools, nil
}

// AssembleCapture consolidates a single capture by name.
func (a *Assembler) AssembleCapture(group, name string) (ConversationRecord, []ToolDefinition, error) {
	text, err := a.source.ReadCapture(group, name)
	if err != nil {
		return nil, nil, err
	}
	record, defs := Consolidate(text)
	return record, defs, nil
}
