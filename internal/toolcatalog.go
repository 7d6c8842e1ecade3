package internal

import "encoding/json"

// ToolCatalog collects unique tool definitions across all captures.
// Definitions are keyed by name: the first occurrence wins and later
// occurrences are discarded even when their schema differs.
type ToolCatalog struct {
	seen map[string]bool
	defs []ToolDefinition
}

// NewToolCatalog creates an empty catalog.
func NewToolCatalog() *ToolCatalog {
	return &ToolCatalog{seen: make(map[string]bool)}
}

// Add records a definition. Definitions lacking the full name, description
// and schema triple are excluded without error. Returns true when the
// definition entered the catalog.
func (c *ToolCatalog) Add(def ToolDefinition) bool {
	if !def.Complete() {
		return false
	}
	if c.seen[def.Name] {
		return false
	}
	c.seen[def.Name] = true
	c.defs = append(c.defs, def)
	return true
}

// AddAll records each definition in order.
func (c *ToolCatalog) AddAll(defs []ToolDefinition) {
	for _, def := range defs {
		c.Add(def)
	}
}

// Definitions returns the catalog in first-seen order.
func (c *ToolCatalog) Definitions() []ToolDefinition {
	return c.defs
}

// Len returns the number of unique tools.
func (c *ToolCatalog) Len() int {
	return len(c.defs)
}

// MarshalJSON renders the catalog as a JSON array in first-seen order.
// An empty catalog marshals as [] rather than null.
func (c *ToolCatalog) MarshalJSON() ([]byte, error) {
	if len(c.defs) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(c.defs)
}
