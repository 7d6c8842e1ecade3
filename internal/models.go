package internal

import "encoding/json"

// Delta kinds recognized in captured streams.
const (
	KindText       = "text"
	KindThinking   = "thinking"
	KindToolInput  = "tool_input"
	KindBlockStart = "block_start"
	KindBlockStop  = "block_stop"
)

// Entry type tags in consolidated output.
const (
	EntryText     = "text"
	EntryThinking = "thinking"
	EntryToolUse  = "tool_use"
)

// DeltaEvent is one decoded unit from a captured stream. Events for the same
// Index arrive in emission order but may be interleaved with other indices.
type DeltaEvent struct {
	Index    int
	Kind     string
	Fragment string          // text/thinking payload
	RawDelta json.RawMessage // tool_input payload, as received
}

// Entry is a completed content block in a consolidated capture.
// Text and thinking entries carry Content; tool_use entries carry the
// last raw delta object observed for the block, not assembled arguments.
type Entry struct {
	Type    string          `json:"type"`
	Content string          `json:"content,omitempty"`
	Delta   json.RawMessage `json:"delta,omitempty"`
}

// MarshalJSON emits the per-variant shape: text and thinking entries always
// carry a content key, even when the accumulated content is empty, and
// tool_use entries carry only the delta.
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.Type == EntryToolUse {
		return json.Marshal(struct {
			Type  string          `json:"type"`
			Delta json.RawMessage `json:"delta"`
		}{e.Type, e.Delta})
	}
	return json.Marshal(struct {
		Type    string `json:"type"`
		Content string `json:"content"`
	}{e.Type, e.Content})
}

// ConversationRecord is the ordered entry list reconstructed from one capture.
type ConversationRecord []Entry

// Capture pairs a consolidated record with where it came from.
type Capture struct {
	Group   string             `json:"group"`
	Name    string             `json:"name"`
	Entries ConversationRecord `json:"entries"`
}

// ToolDefinition is one tool advertised in a captured request.
type ToolDefinition struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"input_schema"`
}

// streamEvent mirrors one data line's JSON payload on the wire.
type streamEvent struct {
	Type    string           `json:"type"`
	Index   *int             `json:"index"`
	Delta   json.RawMessage  `json:"delta"`
	Tools   []ToolDefinition `json:"tools"`
	Message *streamMessage   `json:"message"`
}

// streamDelta is the nested delta payload of a content_block_delta event.
type streamDelta struct {
	Type        string `json:"type"`
	Text        string `json:"text"`
	Thinking    string `json:"thinking"`
	PartialJSON string `json:"partial_json"`
}

// streamMessage covers message-level event payloads that may embed a tools
// array (request echoes written into hand-captured streams).
type streamMessage struct {
	Tools []ToolDefinition `json:"tools"`
}

// Complete reports whether a definition carries the full name, description
// and schema triple required for the catalog.
func (td ToolDefinition) Complete() bool {
	return td.Name != "" && td.Description != "" && len(td.InputSchema) > 0
}
