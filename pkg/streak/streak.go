// Package streak derives writing streaks from the set of qualifying dates.
// The computation is pure: it always re-derives from the full date set, so
// insertion order and stale caches never matter.
package streak

import (
	"sort"

	"tableflip.dev/ponder/pkg/dates"
	"tableflip.dev/ponder/pkg/state"
)

// QualifyingDates returns the dates whose records have non-empty post-trim
// text. Days visited but never written do not count.
func QualifyingDates(reflections map[string]state.ReflectionRecord) []string {
	out := make([]string, 0, len(reflections))
	for date, r := range reflections {
		if r.Qualifies() {
			out = append(out, date)
		}
	}
	return out
}

// Calculate computes the streak snapshot for the given qualifying dates.
// prevLongest is the previously cached longest streak; the returned Longest
// never drops below it.
func Calculate(qualifying []string, prevLongest int, today string) state.StreakSnapshot {
	if len(qualifying) == 0 {
		return state.StreakSnapshot{Longest: maxInt(0, prevLongest)}
	}

	ds := append([]string(nil), qualifying...)
	sort.Sort(sort.Reverse(sort.StringSlice(ds)))

	current := 0
	if dates.DaysBetween(ds[0], today) <= 1 {
		current = 1
		for i := 1; i < len(ds); i++ {
			if dates.DaysBetween(ds[i], ds[i-1]) != 1 {
				break
			}
			current++
		}
	}

	// Longest scans the whole history, not just the trailing run.
	longest := 1
	run := 1
	for i := 1; i < len(ds); i++ {
		if dates.DaysBetween(ds[i], ds[i-1]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	return state.StreakSnapshot{
		Current:            current,
		Longest:            maxInt(longest, prevLongest),
		LastReflectionDate: ds[0],
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
