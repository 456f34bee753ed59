package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ponder/pkg/commands/options"
	"tableflip.dev/ponder/pkg/runner/clear"
	"tableflip.dev/ponder/pkg/store"
)

func addClear(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Erase all reflections and streak history",
		Example: `
ponder clear --confirm
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			c := clear.Clear{
				Confirm:     co.Confirm,
				Persistence: p,
			}
			return output.HandleError(c.Do(context.Background()))
		},
	}
	options.AddConfirmArg(cmd, co)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
