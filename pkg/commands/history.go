package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ponder/pkg/commands/options"
	"tableflip.dev/ponder/pkg/runner/history"
	"tableflip.dev/ponder/pkg/store"
)

func addHistory(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"log", "past"},
		Short:   "List past reflections, newest first",
		Example: `
ponder history
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			h := history.History{
				Persistence: p,
			}
			return output.HandleError(h.Do(context.Background()))
		},
	}
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
