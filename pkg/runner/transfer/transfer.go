// Package transfer runs the export and import verbs.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/ponder/pkg/dates"
	"tableflip.dev/ponder/pkg/store"
	xfer "tableflip.dev/ponder/pkg/transfer"
)

// Export writes the full journal document to a file or stdout.
type Export struct {
	// Output is the target path; empty means stdout, "auto" means the
	// conventional reflections-<date>.json in the working directory.
	Output      string
	Persistence store.Persistence
	Clock       dates.Clock
}

func (n *Export) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not export, no persistence")
	}

	doc := xfer.Export(n.Persistence)

	clock := n.Clock
	if clock == nil {
		clock = dates.System
	}

	switch n.Output {
	case "":
		fmt.Println(doc)
	case "auto":
		name := xfer.Filename(clock())
		if err := os.WriteFile(name, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		fmt.Printf("exported to %s\n", name)
	default:
		if err := os.WriteFile(n.Output, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", n.Output, err)
		}
		fmt.Printf("exported to %s\n", n.Output)
	}
	return nil
}

// Import replaces the journal with a previously exported document.
type Import struct {
	File        string
	Persistence store.Persistence
}

func (n *Import) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not import, no persistence")
	}

	data, err := os.ReadFile(n.File)
	if err != nil {
		return fmt.Errorf("read %s: %w", n.File, err)
	}

	if !xfer.Import(n.Persistence, string(data)) {
		return fmt.Errorf("%s is not a valid journal export; existing data left untouched", n.File)
	}

	fmt.Printf("imported %s\n", n.File)
	return nil
}
