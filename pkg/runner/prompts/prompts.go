// Package prompts lists the question catalog.
package prompts

import (
	"context"
	"errors"

	"tableflip.dev/ponder/pkg/dates"
	"tableflip.dev/ponder/pkg/ledger"
	"tableflip.dev/ponder/pkg/printers"
	"tableflip.dev/ponder/pkg/prompt"
	"tableflip.dev/ponder/pkg/store"
)

// Prompts shows the full catalog with today's cursor marked.
type Prompts struct {
	Persistence store.Persistence
	Clock       dates.Clock
}

func (n *Prompts) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list prompts, no persistence")
	}

	l := ledger.Open(n.Persistence, n.Clock)

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Prompts")
	pp.Prompts(prompt.Catalog(), l.State().CurrentQuestionID)
	return nil
}
