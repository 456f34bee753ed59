package prompt

import (
	"testing"

	"tableflip.dev/ponder/pkg/state"
)

func TestTextUnknownID(t *testing.T) {
	if Text(0) != Placeholder {
		t.Fatalf("expected placeholder for id 0")
	}
	if Text(Count()+1) != Placeholder {
		t.Fatalf("expected placeholder past the catalog")
	}
	if Text(1) == Placeholder {
		t.Fatalf("expected a real prompt for id 1")
	}
}

func TestAdvanceIfNeededRotates(t *testing.T) {
	s := state.Default()
	s.CurrentQuestionID = 3
	s.LastQuestionDate = "2024-01-02"

	if !AdvanceIfNeeded(s, "2024-01-03") {
		t.Fatalf("expected rotation on a new day")
	}
	if s.CurrentQuestionID != 4 {
		t.Fatalf("expected cursor 4, got %d", s.CurrentQuestionID)
	}
	if s.LastQuestionDate != "2024-01-03" {
		t.Fatalf("expected rotation date recorded, got %s", s.LastQuestionDate)
	}
}

func TestAdvanceIfNeededWrapsToFirst(t *testing.T) {
	s := state.Default()
	s.CurrentQuestionID = Count()
	s.LastQuestionDate = "2024-01-02"

	AdvanceIfNeeded(s, "2024-01-03")
	if s.CurrentQuestionID != 1 {
		t.Fatalf("expected wrap to 1 after the last prompt, got %d", s.CurrentQuestionID)
	}
}

func TestAdvanceIfNeededIdempotentWithinDay(t *testing.T) {
	s := state.Default()
	s.CurrentQuestionID = 5
	s.LastQuestionDate = "2024-01-02"

	AdvanceIfNeeded(s, "2024-01-03")
	id, date := s.CurrentQuestionID, s.LastQuestionDate
	if AdvanceIfNeeded(s, "2024-01-03") {
		t.Fatalf("second call on the same day must be a no-op")
	}
	if s.CurrentQuestionID != id || s.LastQuestionDate != date {
		t.Fatalf("state changed on repeated rotation: %d %s", s.CurrentQuestionID, s.LastQuestionDate)
	}
}
