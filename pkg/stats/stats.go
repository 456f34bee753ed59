// Package stats derives writing statistics from the journal state. Everything
// here is a pure function over a state snapshot; corrupt or empty input just
// produces zeros.
package stats

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"tableflip.dev/ponder/pkg/dates"
	"tableflip.dev/ponder/pkg/state"
)

// Stats aggregates word counts over the qualifying record set.
type Stats struct {
	TotalReflections   int
	TotalWords         int
	AverageWords       int
	LongestReflection  int
	ShortestReflection int
	CurrentWords       int
}

// DaySpan summarizes the calendar coverage of the qualifying record set.
type DaySpan struct {
	TotalDays           int
	FirstReflectionDate string
	LastReflectionDate  string
	DaysSinceFirst      int
}

// CountWords counts whitespace-delimited tokens: trim, collapse internal runs,
// split. Locale-naive on purpose.
func CountWords(s string) int {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0
	}
	return len(strings.Fields(trimmed))
}

// Calculate computes word-count aggregates; today selects CurrentWords.
func Calculate(s *state.AppState, today string) Stats {
	var out Stats
	for date, r := range s.Reflections {
		if !r.Qualifies() {
			continue
		}
		words := CountWords(r.Text)
		out.TotalReflections++
		out.TotalWords += words
		if words > out.LongestReflection {
			out.LongestReflection = words
		}
		if out.ShortestReflection == 0 || words < out.ShortestReflection {
			out.ShortestReflection = words
		}
		if date == today {
			out.CurrentWords = words
		}
	}
	if out.TotalReflections > 0 {
		out.AverageWords = int(math.Round(float64(out.TotalWords) / float64(out.TotalReflections)))
	}
	return out
}

// Days computes the calendar span of qualifying reflections.
func Days(s *state.AppState, today string) DaySpan {
	qualifying := make([]string, 0, len(s.Reflections))
	for date, r := range s.Reflections {
		if r.Qualifies() {
			qualifying = append(qualifying, date)
		}
	}
	if len(qualifying) == 0 {
		return DaySpan{}
	}
	sort.Strings(qualifying)
	first := qualifying[0]
	return DaySpan{
		TotalDays:           len(qualifying),
		FirstReflectionDate: first,
		LastReflectionDate:  qualifying[len(qualifying)-1],
		DaysSinceFirst:      dates.DaysBetween(first, today),
	}
}

// Message renders a short contextual line for the stats view, keyed off the
// streak and totals.
func Message(st Stats, streak state.StreakSnapshot) string {
	switch {
	case st.TotalReflections == 0:
		return "Write your first reflection to start a streak."
	case streak.Current == 0:
		return "Your streak is waiting. Today is a good day to restart it."
	case streak.Current == 1:
		return "Day one. Come back tomorrow to keep it going."
	case streak.Current >= 30:
		return fmt.Sprintf("%d days straight. This is a habit now.", streak.Current)
	case streak.Current >= 7:
		return fmt.Sprintf("%d days in a row. A full week and counting.", streak.Current)
	case streak.Current == streak.Longest:
		return fmt.Sprintf("%d days in a row. This is your best streak yet.", streak.Current)
	default:
		return fmt.Sprintf("%d days in a row. Your record is %d.", streak.Current, streak.Longest)
	}
}
