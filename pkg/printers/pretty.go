// Package printers renders journal snapshots on the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/ponder/pkg/ledger"
	"tableflip.dev/ponder/pkg/state"
	"tableflip.dev/ponder/pkg/stats"
)

type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Today renders the initial-paint view: date, prompt, text, streak.
func (pp *PrettyPrint) Today(v ledger.View) {
	pp.Title(v.Date)

	q := color.New(color.FgHiCyan, color.Italic)
	_, _ = q.Println(v.QuestionText)

	if strings.TrimSpace(v.Text) == "" {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" nothing written yet")
	} else {
		fmt.Println(v.Text)
	}

	fmt.Println("")
	pp.Streak(v.Streak)
}

// Streak prints the one-line streak banner.
func (pp *PrettyPrint) Streak(s state.StreakSnapshot) {
	b := color.New(color.Bold)
	f := color.New(color.Faint)
	switch s.Current {
	case 0:
		_, _ = f.Println("no active streak")
	case 1:
		_, _ = b.Print("1 day streak")
		_, _ = f.Printf("  (best %d)\n", s.Longest)
	default:
		_, _ = b.Printf("%d day streak", s.Current)
		_, _ = f.Printf("  (best %d)\n", s.Longest)
	}
}

// History renders past reflections as a table, newest first.
func (pp *PrettyPrint) History(entries []ledger.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Date"), bold.Sprint("Prompt"), bold.Sprint("Reflection"))
	for _, e := range entries {
		tbl.AddRow(e.Date, e.QuestionText, e.Text)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Stats renders the word-count aggregates, the day span, and the contextual
// message.
func (pp *PrettyPrint) Stats(st stats.Stats, span stats.DaySpan, message string) {
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Reflections"), fmt.Sprintf("%d", st.TotalReflections))
	tbl.AddRow(bold.Sprint("Total words"), fmt.Sprintf("%d", st.TotalWords))
	tbl.AddRow(bold.Sprint("Average words"), fmt.Sprintf("%d", st.AverageWords))
	tbl.AddRow(bold.Sprint("Longest"), fmt.Sprintf("%d", st.LongestReflection))
	tbl.AddRow(bold.Sprint("Shortest"), fmt.Sprintf("%d", st.ShortestReflection))
	tbl.AddRow(bold.Sprint("Today"), fmt.Sprintf("%d", st.CurrentWords))
	if span.TotalDays > 0 {
		tbl.AddRow(bold.Sprint("First entry"), span.FirstReflectionDate)
		tbl.AddRow(bold.Sprint("Latest entry"), span.LastReflectionDate)
		tbl.AddRow(bold.Sprint("Days journaling"), fmt.Sprintf("%d", span.DaysSinceFirst))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	if message != "" {
		fmt.Println("")
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(message)
	}
}

// Prompts lists the catalog with the current cursor marked.
func (pp *PrettyPrint) Prompts(catalog []string, currentID int) {
	tbl := uitable.New()
	tbl.Separator = "  "
	cur := color.New(color.Bold, color.FgHiCyan)
	for i, text := range catalog {
		id := i + 1
		if id == currentID {
			tbl.AddRow(cur.Sprintf("%2d ›", id), cur.Sprint(text))
		} else {
			tbl.AddRow(fmt.Sprintf("%2d", id), text)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
