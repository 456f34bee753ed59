// Package state defines the persisted reflection aggregate. The whole journal
// is one JSON document; field names stay camelCase so documents exported by
// earlier builds import cleanly.
package state

import (
	"encoding/json"
	"strings"
)

// AppState is the single persisted aggregate.
type AppState struct {
	CurrentQuestionID int                         `json:"currentQuestionId"`
	LastQuestionDate  string                      `json:"lastQuestionDate,omitempty"`
	Reflections       map[string]ReflectionRecord `json:"reflections"`
	Streak            StreakSnapshot              `json:"streak"`
}

// ReflectionRecord is one calendar day's writing. Re-saving a day replaces the
// record in place; only LastEdited remembers that an edit happened.
type ReflectionRecord struct {
	QuestionID int       `json:"questionId"`
	Text       string    `json:"text"`
	LastEdited Timestamp `json:"lastEdited"`
}

// Qualifies reports whether the record counts toward streaks and statistics:
// a day visited but never written does not.
func (r ReflectionRecord) Qualifies() bool {
	return strings.TrimSpace(r.Text) != ""
}

// StreakSnapshot is the cached streak computation. Longest never decreases
// across the lifetime of the state.
type StreakSnapshot struct {
	Current            int    `json:"current"`
	Longest            int    `json:"longest"`
	LastReflectionDate string `json:"lastReflectionDate,omitempty"`
}

// Default returns a fresh aggregate: first prompt, nothing written.
func Default() *AppState {
	return &AppState{
		CurrentQuestionID: 1,
		Reflections:       map[string]ReflectionRecord{},
	}
}

// Clone deep-copies the aggregate so callers can thread value snapshots
// without sharing the reflections map.
func (s *AppState) Clone() *AppState {
	out := *s
	out.Reflections = make(map[string]ReflectionRecord, len(s.Reflections))
	for date, r := range s.Reflections {
		out.Reflections[date] = r
	}
	return &out
}

// Decode parses a persisted or imported document. The shape check is
// duck-typed: any JSON object carrying reflections and streak keys is
// accepted, then normalized.
func Decode(data []byte) (*AppState, bool) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, false
	}
	if _, ok := probe["reflections"]; !ok {
		return nil, false
	}
	if _, ok := probe["streak"]; !ok {
		return nil, false
	}
	s := &AppState{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, false
	}
	s.Normalize()
	return s, true
}

// Normalize re-defaults malformed fields after a duck-typed accept so a
// sloppy import cannot poison later reads.
func (s *AppState) Normalize() {
	if s.CurrentQuestionID < 1 {
		s.CurrentQuestionID = 1
	}
	if s.Reflections == nil {
		s.Reflections = map[string]ReflectionRecord{}
	}
	if s.Streak.Current < 0 {
		s.Streak.Current = 0
	}
	if s.Streak.Longest < 0 {
		s.Streak.Longest = 0
	}
}
