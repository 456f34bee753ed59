// Package stats renders writing statistics.
package stats

import (
	"context"
	"errors"

	"tableflip.dev/ponder/pkg/dates"
	"tableflip.dev/ponder/pkg/ledger"
	"tableflip.dev/ponder/pkg/printers"
	statistics "tableflip.dev/ponder/pkg/stats"
	"tableflip.dev/ponder/pkg/store"
)

// Stats computes and prints word-count and day-span aggregates.
type Stats struct {
	Persistence store.Persistence
	Clock       dates.Clock
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not compute stats, no persistence")
	}

	l := ledger.Open(n.Persistence, n.Clock)
	s := l.State()

	clock := n.Clock
	if clock == nil {
		clock = dates.System
	}
	today := clock()

	st := statistics.Calculate(s, today)
	span := statistics.Days(s, today)
	message := statistics.Message(st, s.Streak)

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Statistics")
	pp.Stats(st, span, message)
	return nil
}
