package internal

import (
	"encoding/json"
	"sort"
	"strings"
)

// blockState tracks one content block while its deltas stream in. The kind
// is fixed by the first classified delta and never changes afterwards.
type blockState struct {
	kind   string
	text   strings.Builder
	deltas []json.RawMessage // tool_input fragments, in arrival order
	sealed bool
}

// Accumulator consolidates the delta events of one capture into complete
// entries. One Accumulator per capture; state is never shared across
// captures.
type Accumulator struct {
	blocks map[int]*blockState
}

// NewAccumulator creates an Accumulator for a single capture.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		blocks: make(map[int]*blockState),
	}
}

// Feed consumes one delta event. Corrupt input never fails: a delta whose
// kind conflicts with the block's established kind is ignored, as is
// anything arriving after the block's stop marker.
func (a *Accumulator) Feed(ev DeltaEvent) {
	switch ev.Kind {
	case KindBlockStart:
		// Boundary only. A block with no classified delta must not
		// fabricate an entry, so no state is created here.
		return
	case KindBlockStop:
		if state, ok := a.blocks[ev.Index]; ok {
			state.sealed = true
		}
		return
	}

	state, ok := a.blocks[ev.Index]
	if !ok {
		state = &blockState{kind: ev.Kind}
		a.blocks[ev.Index] = state
	}
	if state.sealed {
		LogDebug("ignoring delta for sealed block %d", ev.Index)
		return
	}
	if state.kind != ev.Kind {
		LogWarn("block %d: %s delta conflicts with established kind %s, ignoring", ev.Index, ev.Kind, state.kind)
		return
	}

	switch ev.Kind {
	case KindText, KindThinking:
		state.text.WriteString(ev.Fragment)
	case KindToolInput:
		state.deltas = append(state.deltas, ev.RawDelta)
	}
}

// Entries seals every remaining block and returns the consolidated entries
// in ascending block-index order, regardless of the order in which blocks
// completed during streaming.
func (a *Accumulator) Entries() ConversationRecord {
	indices := make([]int, 0, len(a.blocks))
	for idx := range a.blocks {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	record := make(ConversationRecord, 0, len(indices))
	for _, idx := range indices {
		state := a.blocks[idx]
		switch state.kind {
		case KindText:
			record = append(record, Entry{Type: EntryText, Content: state.text.String()})
		case KindThinking:
			record = append(record, Entry{Type: EntryThinking, Content: state.text.String()})
		case KindToolInput:
			if len(state.deltas) == 0 {
				continue
			}
			// The output contract stores the last raw delta as received,
			// not a document assembled from the fragments.
			record = append(record, Entry{Type: EntryToolUse, Delta: state.deltas[len(state.deltas)-1]})
		}
	}

	return record
}

// Consolidate runs a capture's text through parser and accumulator in one
// pass, returning the entry list and any tool definitions seen.
func Consolidate(text string) (ConversationRecord, []ToolDefinition) {
	parser := NewParser()
	events, tools := parser.Parse(text)

	acc := NewAccumulator()
	for _, ev := range events {
		acc.Feed(ev)
	}

	return acc.Entries(), tools
}
