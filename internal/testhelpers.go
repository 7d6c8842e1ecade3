package internal

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TextDeltaLine builds a data line carrying a text_delta fragment.
func TextDeltaLine(index int, text string) string {
	payload, _ := json.Marshal(text)
	return fmt.Sprintf(`data: {"type":"content_block_delta","index":%d,"delta":{"type":"text_delta","text":%s}}`, index, payload)
}

// ThinkingDeltaLine builds a data line carrying a thinking_delta fragment.
func ThinkingDeltaLine(index int, thinking string) string {
	payload, _ := json.Marshal(thinking)
	return fmt.Sprintf(`data: {"type":"content_block_delta","index":%d,"delta":{"type":"thinking_delta","thinking":%s}}`, index, payload)
}

// ToolInputDeltaLine builds a data line carrying an input_json_delta fragment.
func ToolInputDeltaLine(index int, partial string) string {
	payload, _ := json.Marshal(partial)
	return fmt.Sprintf(`data: {"type":"content_block_delta","index":%d,"delta":{"type":"input_json_delta","partial_json":%s}}`, index, payload)
}

// BlockStartLine builds a content_block_start boundary line.
func BlockStartLine(index int) string {
	return fmt.Sprintf(`data: {"type":"content_block_start","index":%d,"content_block":{"type":"text","text":""}}`, index)
}

// BlockStopLine builds a content_block_stop boundary line.
func BlockStopLine(index int) string {
	return fmt.Sprintf(`data: {"type":"content_block_stop","index":%d}`, index)
}

// ToolsLine builds a request-echo data line advertising tool definitions.
func ToolsLine(defs ...ToolDefinition) string {
	payload, _ := json.Marshal(defs)
	return fmt.Sprintf(`data: {"type":"request_echo","tools":%s}`, payload)
}

// TestToolDefinition builds a complete tool definition for tests.
func TestToolDefinition(name string) ToolDefinition {
	return ToolDefinition{
		Name:        name,
		Description: "Description of " + name,
		InputSchema: json.RawMessage(`{"type":"object","properties":{}}`),
	}
}

// BuildCapture joins event lines into one capture text, with the SSE event
// name lines a real capture interleaves.
func BuildCapture(lines ...string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString("event: noise\n")
		b.WriteString(line)
		b.WriteString("\n\n")
	}
	return b.String()
}
