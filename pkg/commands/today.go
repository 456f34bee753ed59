package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ponder/pkg/commands/options"
	"tableflip.dev/ponder/pkg/runner/today"
	"tableflip.dev/ponder/pkg/store"
)

func addToday(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's prompt, reflection, and streak",
		Example: `
ponder today
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			t := today.Today{
				Persistence: p,
			}
			return output.HandleError(t.Do(context.Background()))
		},
	}
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
