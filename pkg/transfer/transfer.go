// Package transfer moves the whole journal in and out as JSON text. Export
// always re-reads durable state so the file reflects what is actually on
// disk; import replaces the persisted state wholesale after validation.
package transfer

import (
	"encoding/json"
	"fmt"

	"tableflip.dev/ponder/pkg/state"
	"tableflip.dev/ponder/pkg/store"
)

// Export serializes the durable state with two-space indentation.
func Export(p store.Persistence) string {
	s := p.LoadState()
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		// The aggregate is plain maps and strings; this cannot happen with
		// well-formed state, but degrade to an empty document anyway.
		return "{}"
	}
	return string(data)
}

// Filename returns the conventional export filename for the given day.
func Filename(today string) string {
	return fmt.Sprintf("reflections-%s.json", today)
}

// Import parses and validates an exported document, then atomically replaces
// the persisted state. On parse or validation failure it returns false and
// leaves the existing state untouched. Any JSON object carrying reflections
// and streak keys is accepted.
func Import(p store.Persistence, data string) bool {
	s, ok := state.Decode([]byte(data))
	if !ok {
		return false
	}
	return p.SaveState(s)
}
