package state

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDecodeRejectsMissingKeys(t *testing.T) {
	if _, ok := Decode([]byte(`{"reflections":{}}`)); ok {
		t.Fatalf("expected rejection without streak key")
	}
	if _, ok := Decode([]byte(`{"streak":{}}`)); ok {
		t.Fatalf("expected rejection without reflections key")
	}
	if _, ok := Decode([]byte(`not json`)); ok {
		t.Fatalf("expected rejection of malformed JSON")
	}
}

func TestDecodeNormalizes(t *testing.T) {
	s, ok := Decode([]byte(`{"currentQuestionId":0,"reflections":null,"streak":{"current":-2,"longest":-1}}`))
	if !ok {
		t.Fatalf("expected duck-typed accept")
	}
	if s.CurrentQuestionID != 1 {
		t.Fatalf("expected question id defaulted to 1, got %d", s.CurrentQuestionID)
	}
	if s.Reflections == nil {
		t.Fatalf("expected reflections map allocated")
	}
	if s.Streak.Current != 0 || s.Streak.Longest != 0 {
		t.Fatalf("expected negative streak fields zeroed, got %+v", s.Streak)
	}
}

func TestCloneDoesNotShareReflections(t *testing.T) {
	s := Default()
	s.Reflections["2024-01-01"] = ReflectionRecord{QuestionID: 1, Text: "first"}

	c := s.Clone()
	c.Reflections["2024-01-02"] = ReflectionRecord{QuestionID: 2, Text: "second"}

	if len(s.Reflections) != 1 {
		t.Fatalf("clone mutated the original map")
	}
}

func TestQualifies(t *testing.T) {
	if (ReflectionRecord{Text: "   "}).Qualifies() {
		t.Fatalf("whitespace-only text should not qualify")
	}
	if !(ReflectionRecord{Text: " a "}).Qualifies() {
		t.Fatalf("non-empty text should qualify")
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	ts := Timestamp{Time: time.Date(2024, 6, 9, 20, 30, 0, 0, time.UTC)}
	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Timestamp
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(ts.Time) {
		t.Fatalf("round trip changed the instant: %v vs %v", back, ts)
	}
}

func TestTimestampZeroIsEmptyString(t *testing.T) {
	data, err := json.Marshal(Timestamp{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `""` {
		t.Fatalf("expected empty string, got %s", data)
	}
	var back Timestamp
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal empty: %v", err)
	}
	if !back.IsZero() {
		t.Fatalf("expected zero timestamp")
	}
}
