// Package history lists past reflections.
package history

import (
	"context"
	"errors"

	"tableflip.dev/ponder/pkg/dates"
	"tableflip.dev/ponder/pkg/ledger"
	"tableflip.dev/ponder/pkg/printers"
	"tableflip.dev/ponder/pkg/store"
)

// History renders all qualifying reflections, newest first.
type History struct {
	Persistence store.Persistence
	Clock       dates.Clock
}

func (n *History) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list history, no persistence")
	}

	l := ledger.Open(n.Persistence, n.Clock)
	entries := l.History()

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("History")
	pp.History(entries)
	return nil
}
