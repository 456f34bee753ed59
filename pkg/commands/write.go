package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ponder/pkg/commands/options"
	"tableflip.dev/ponder/pkg/runner/write"
	"tableflip.dev/ponder/pkg/store"
)

func addWrite(topLevel *cobra.Command) {
	wo := &options.WriteOptions{}

	cmd := &cobra.Command{
		Use:   "write [text]",
		Short: "Write or revise today's reflection",
		Example: `
ponder write Today I finally finished the garden bed.
cat draft.txt | ponder write
`,
		Args: func(_ *cobra.Command, args []string) error {
			return wo.ResolveText(args)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			w := write.Write{
				Text:        wo.Text,
				Persistence: p,
			}
			return output.HandleError(w.Do(context.Background()))
		},
	}
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
