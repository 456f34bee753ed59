package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/ponder/pkg/commands/options"
	"tableflip.dev/ponder/pkg/runner/transfer"
	"tableflip.dev/ponder/pkg/store"
)

func addImport(topLevel *cobra.Command) {
	var file string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the journal with a previously exported document",
		Example: `
ponder import reflections-2024-01-03.json
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one export file")
			}
			file = args[0]
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			i := transfer.Import{
				File:        file,
				Persistence: p,
			}
			return output.HandleError(i.Do(context.Background()))
		},
	}
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
