// Package ledger is the aggregate that owns state mutation: writing the day's
// reflection, rotating the prompt, and refreshing the streak cache. Every
// operation works on a cloned snapshot and persists the full result, so no
// caller ever observes a half-applied state.
package ledger

import (
	"sort"

	"tableflip.dev/ponder/pkg/dates"
	"tableflip.dev/ponder/pkg/prompt"
	"tableflip.dev/ponder/pkg/state"
	"tableflip.dev/ponder/pkg/store"
	"tableflip.dev/ponder/pkg/streak"
)

// Entry is one history row for display.
type Entry struct {
	Date         string
	QuestionID   int
	QuestionText string
	Text         string
	LastEdited   state.Timestamp
}

// View is the snapshot an external renderer needs for its initial paint.
type View struct {
	QuestionText string
	Date         string
	Text         string
	Streak       state.StreakSnapshot
}

// Ledger coordinates the store, rotator, and streak calculator over one
// loaded state snapshot.
type Ledger struct {
	p     store.Persistence
	clock dates.Clock
	s     *state.AppState

	// now is split from clock for tests; it stamps LastEdited.
	now func() state.Timestamp
}

// Open loads durable state, rotates the prompt if the day changed, refreshes
// the streak cache, and persists once if anything moved.
func Open(p store.Persistence, clock dates.Clock) *Ledger {
	if clock == nil {
		clock = dates.System
	}
	l := &Ledger{p: p, clock: clock, now: state.Now}

	s := p.LoadState()
	today := clock()

	rotated := prompt.AdvanceIfNeeded(s, today)
	fresh := streak.Calculate(streak.QualifyingDates(s.Reflections), s.Streak.Longest, today)
	changed := rotated || fresh != s.Streak
	s.Streak = fresh

	if changed {
		p.SaveState(s)
	}
	l.s = s
	return l
}

// Today returns today's reflection text, empty when nothing is recorded.
func (l *Ledger) Today() string {
	return l.s.Reflections[l.clock()].Text
}

// SaveToday upserts today's record and persists. The streak cache is
// recomputed only when the day transitions from no qualifying text to
// qualifying text; later edits within the same day keep the cached snapshot
// so a debounced editor is not paying a full rescan per keystroke.
// Interactive input layers should funnel keystroke-driven edits through a
// debounce.Saver so only the trailing edit of a burst reaches this method.
func (l *Ledger) SaveToday(text string) *state.AppState {
	today := l.clock()
	next := l.s.Clone()

	hadText := next.Reflections[today].Qualifies()
	next.Reflections[today] = state.ReflectionRecord{
		QuestionID: next.CurrentQuestionID,
		Text:       text,
		LastEdited: l.now(),
	}

	if !hadText && next.Reflections[today].Qualifies() {
		next.Streak = streak.Calculate(streak.QualifyingDates(next.Reflections), next.Streak.Longest, today)
	}

	l.p.SaveState(next)
	l.s = next
	return next.Clone()
}

// History returns all qualifying reflections, newest first. Zero-padded ISO
// dates make plain string comparison a safe sort key.
func (l *Ledger) History() []Entry {
	out := make([]Entry, 0, len(l.s.Reflections))
	for date, r := range l.s.Reflections {
		if !r.Qualifies() {
			continue
		}
		out = append(out, Entry{
			Date:         date,
			QuestionID:   r.QuestionID,
			QuestionText: prompt.Text(r.QuestionID),
			Text:         r.Text,
			LastEdited:   r.LastEdited,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// View returns the initial-paint snapshot for the rendering boundary.
func (l *Ledger) View() View {
	today := l.clock()
	return View{
		QuestionText: prompt.Text(l.s.CurrentQuestionID),
		Date:         today,
		Text:         l.s.Reflections[today].Text,
		Streak:       l.s.Streak,
	}
}

// Streak returns the cached streak snapshot.
func (l *Ledger) Streak() state.StreakSnapshot {
	return l.s.Streak
}

// State returns a cloned snapshot of the full aggregate.
func (l *Ledger) State() *state.AppState {
	return l.s.Clone()
}

// Reset clears durable state back to defaults and reports success.
func (l *Ledger) Reset() bool {
	if !l.p.ClearState() {
		return false
	}
	l.s = state.Default()
	return true
}
