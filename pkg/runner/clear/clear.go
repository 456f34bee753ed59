// Package clear resets the journal to defaults.
package clear

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/ponder/pkg/dates"
	"tableflip.dev/ponder/pkg/ledger"
	"tableflip.dev/ponder/pkg/store"
)

// Clear erases all reflections and streak history.
type Clear struct {
	Confirm     bool
	Persistence store.Persistence
	Clock       dates.Clock
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not clear, no persistence")
	}
	if !n.Confirm {
		return errors.New("refusing to clear without --confirm")
	}

	l := ledger.Open(n.Persistence, n.Clock)
	if !l.Reset() {
		return errors.New("clear failed; journal left as it was")
	}

	fmt.Println("journal cleared")
	return nil
}
