package stats

import (
	"testing"

	"tableflip.dev/ponder/pkg/state"
)

func TestCountWords(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"  a   b  ", 2},
		{"a\tb\nc", 3},
	}
	for _, c := range cases {
		if got := CountWords(c.in); got != c.want {
			t.Fatalf("CountWords(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestCalculateEmptyState(t *testing.T) {
	st := Calculate(state.Default(), "2024-01-03")
	if st != (Stats{}) {
		t.Fatalf("expected all zeros, got %+v", st)
	}
}

func TestCalculateAggregates(t *testing.T) {
	s := state.Default()
	s.Reflections["2024-01-01"] = state.ReflectionRecord{Text: "three words here"}
	s.Reflections["2024-01-02"] = state.ReflectionRecord{Text: "two words"}
	s.Reflections["2024-01-03"] = state.ReflectionRecord{Text: "a longer reflection of six words"}
	s.Reflections["2024-01-04"] = state.ReflectionRecord{Text: "   "} // visited, not written

	st := Calculate(s, "2024-01-03")
	if st.TotalReflections != 3 {
		t.Fatalf("expected 3 reflections, got %d", st.TotalReflections)
	}
	if st.TotalWords != 11 {
		t.Fatalf("expected 11 words, got %d", st.TotalWords)
	}
	if st.AverageWords != 4 {
		t.Fatalf("expected rounded average 4, got %d", st.AverageWords)
	}
	if st.LongestReflection != 6 || st.ShortestReflection != 2 {
		t.Fatalf("expected longest 6 / shortest 2, got %d / %d", st.LongestReflection, st.ShortestReflection)
	}
	if st.CurrentWords != 6 {
		t.Fatalf("expected today's words 6, got %d", st.CurrentWords)
	}
}

func TestDaysSpan(t *testing.T) {
	s := state.Default()
	s.Reflections["2024-01-01"] = state.ReflectionRecord{Text: "first"}
	s.Reflections["2024-01-05"] = state.ReflectionRecord{Text: "latest"}
	s.Reflections["2024-01-02"] = state.ReflectionRecord{Text: ""}

	span := Days(s, "2024-01-06")
	if span.TotalDays != 2 {
		t.Fatalf("expected 2 qualifying days, got %d", span.TotalDays)
	}
	if span.FirstReflectionDate != "2024-01-01" || span.LastReflectionDate != "2024-01-05" {
		t.Fatalf("unexpected span bounds: %+v", span)
	}
	if span.DaysSinceFirst != 5 {
		t.Fatalf("expected 5 days since first, got %d", span.DaysSinceFirst)
	}
}

func TestDaysEmpty(t *testing.T) {
	if span := Days(state.Default(), "2024-01-01"); span != (DaySpan{}) {
		t.Fatalf("expected zero span, got %+v", span)
	}
}

func TestMessageVariants(t *testing.T) {
	if got := Message(Stats{}, state.StreakSnapshot{}); got == "" {
		t.Fatalf("expected a first-reflection nudge")
	}
	broken := Message(Stats{TotalReflections: 4}, state.StreakSnapshot{Current: 0, Longest: 3})
	active := Message(Stats{TotalReflections: 4}, state.StreakSnapshot{Current: 2, Longest: 5})
	best := Message(Stats{TotalReflections: 4}, state.StreakSnapshot{Current: 3, Longest: 3})
	if broken == active || active == best {
		t.Fatalf("expected distinct messages per streak situation")
	}
}
