package internal

import (
	"bufio"
	"encoding/json"
	"strings"
)

// Wire event types emitted by the captured API.
const (
	eventBlockDelta = "content_block_delta"
	eventBlockStart = "content_block_start"
	eventBlockStop  = "content_block_stop"
)

const dataPrefix = "data: "

// Parser decodes one raw capture into an ordered sequence of DeltaEvent.
// Parsing the same text always yields the same sequence; a Parser holds no
// state between captures.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes the full text of one capture. Lines without the data prefix
// and lines with malformed JSON are skipped; one bad line never loses the
// rest of the capture. Tool definitions found along the way are returned
// separately for the catalog.
func (p *Parser) Parse(text string) ([]DeltaEvent, []ToolDefinition) {
	var events []DeltaEvent
	var tools []ToolDefinition

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		ev, defs, ok := p.parseLine(scanner.Text())
		if !ok {
			continue
		}
		if ev != nil {
			events = append(events, *ev)
		}
		tools = append(tools, defs...)
	}
	// Scanner errors only occur on pathological line lengths; the events
	// decoded up to that point are still returned.
	if err := scanner.Err(); err != nil {
		LogDebug("capture scan stopped early: %v", err)
	}

	return events, tools
}

// parseLine decodes a single capture line. The bool result is false when the
// line carries no usable event (wrong prefix, malformed JSON).
func (p *Parser) parseLine(line string) (*DeltaEvent, []ToolDefinition, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, dataPrefix) {
		return nil, nil, false
	}

	var raw streamEvent
	if err := json.Unmarshal([]byte(line[len(dataPrefix):]), &raw); err != nil {
		LogDebug("skipping malformed data line: %v", err)
		return nil, nil, false
	}

	defs := collectToolDefinitions(&raw)

	switch raw.Type {
	case eventBlockDelta:
		ev := p.classifyDelta(&raw)
		return ev, defs, true
	case eventBlockStart:
		if raw.Index == nil {
			return nil, defs, true
		}
		return &DeltaEvent{Index: *raw.Index, Kind: KindBlockStart}, defs, true
	case eventBlockStop:
		if raw.Index == nil {
			return nil, defs, true
		}
		return &DeltaEvent{Index: *raw.Index, Kind: KindBlockStop}, defs, true
	default:
		// message_start, ping, request echoes and friends: no block event,
		// but they may still have contributed tool definitions.
		return nil, defs, true
	}
}

// classifyDelta maps a content_block_delta payload to a DeltaEvent, or nil
// when the nested delta is absent or of an unknown type.
func (p *Parser) classifyDelta(raw *streamEvent) *DeltaEvent {
	if raw.Index == nil || len(raw.Delta) == 0 {
		return nil
	}

	var delta streamDelta
	if err := json.Unmarshal(raw.Delta, &delta); err != nil {
		LogDebug("skipping undecodable delta at index %d: %v", *raw.Index, err)
		return nil
	}

	switch delta.Type {
	case "text_delta":
		return &DeltaEvent{Index: *raw.Index, Kind: KindText, Fragment: delta.Text}
	case "thinking_delta":
		return &DeltaEvent{Index: *raw.Index, Kind: KindThinking, Fragment: delta.Thinking}
	case "input_json_delta":
		return &DeltaEvent{Index: *raw.Index, Kind: KindToolInput, RawDelta: raw.Delta}
	default:
		return nil
	}
}

// collectToolDefinitions pulls tool definitions from wherever a capture line
// can carry them: a top-level tools array or one nested in a message record.
func collectToolDefinitions(raw *streamEvent) []ToolDefinition {
	var defs []ToolDefinition
	defs = append(defs, raw.Tools...)
	if raw.Message != nil {
		defs = append(defs, raw.Message.Tools...)
	}
	return defs
}
