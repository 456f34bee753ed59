// Package write saves today's reflection.
package write

import (
	"context"
	"errors"
	"strings"

	"tableflip.dev/ponder/pkg/dates"
	"tableflip.dev/ponder/pkg/ledger"
	"tableflip.dev/ponder/pkg/printers"
	"tableflip.dev/ponder/pkg/store"
)

// Write upserts today's reflection text and reprints the day view.
type Write struct {
	Text        string
	Persistence store.Persistence
	Clock       dates.Clock
}

// Do saves the reflection and shows the resulting streak.
func (n *Write) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not write, no persistence")
	}
	if strings.TrimSpace(n.Text) == "" {
		return errors.New("nothing to write")
	}

	l := ledger.Open(n.Persistence, n.Clock)
	l.SaveToday(n.Text)

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Today(l.View())
	return nil
}
