// Package prompt holds the rotating question catalog and the rotation rule.
// The catalog is a static ordered list addressed by a 1-based cursor that
// wraps back to the first prompt after the last.
package prompt

import (
	"tableflip.dev/ponder/pkg/state"
)

var catalog = []string{
	"What made you smile today?",
	"What challenged you today, and how did you respond?",
	"What are you grateful for right now?",
	"What did you learn about yourself today?",
	"What would you do differently if you could relive today?",
	"Who had a positive impact on your day?",
	"What small win are you proud of today?",
	"What drained your energy today, and what restored it?",
	"What are you looking forward to tomorrow?",
	"What did you notice today that you usually overlook?",
	"What conversation stayed with you today?",
	"How did you take care of yourself today?",
	"What would you tell a friend who had the day you just had?",
}

// Placeholder stands in for prompts that no longer exist, e.g. a reflection
// recorded against an id from an older catalog.
const Placeholder = "(question unavailable)"

// Count returns the number of prompts in the catalog.
func Count() int {
	return len(catalog)
}

// Catalog returns the ordered prompt list.
func Catalog() []string {
	return append([]string(nil), catalog...)
}

// Text returns the prompt for a 1-based id, degrading to Placeholder for ids
// outside the catalog.
func Text(id int) string {
	if id < 1 || id > len(catalog) {
		return Placeholder
	}
	return catalog[id-1]
}

// AdvanceIfNeeded rotates the cursor when today differs from the date of the
// last rotation, and reports whether anything changed. Repeated calls on the
// same day are no-ops; this is the only mutation path for the cursor.
func AdvanceIfNeeded(s *state.AppState, today string) bool {
	if s.LastQuestionDate == today {
		return false
	}
	s.CurrentQuestionID = s.CurrentQuestionID%len(catalog) + 1
	s.LastQuestionDate = today
	return true
}
