// Package today shows the current prompt and whatever has been written so far.
package today

import (
	"context"
	"errors"

	"tableflip.dev/ponder/pkg/dates"
	"tableflip.dev/ponder/pkg/ledger"
	"tableflip.dev/ponder/pkg/printers"
	"tableflip.dev/ponder/pkg/store"
)

// Today renders the day view: date, prompt, text, streak.
type Today struct {
	Persistence store.Persistence
	Clock       dates.Clock
}

func (n *Today) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show today, no persistence")
	}

	l := ledger.Open(n.Persistence, n.Clock)

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Today(l.View())
	return nil
}
