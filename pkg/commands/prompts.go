package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ponder/pkg/commands/options"
	"tableflip.dev/ponder/pkg/runner/prompts"
	"tableflip.dev/ponder/pkg/store"
)

func addPrompts(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "prompts",
		Aliases: []string{"questions"},
		Short:   "List the question catalog with today's prompt marked",
		Example: `
ponder prompts
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			pr := prompts.Prompts{
				Persistence: p,
			}
			return output.HandleError(pr.Do(context.Background()))
		},
	}
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
