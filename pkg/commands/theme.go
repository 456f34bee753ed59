package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/ponder/pkg/commands/options"
	"tableflip.dev/ponder/pkg/runner/theme"
	"tableflip.dev/ponder/pkg/store"
)

func addTheme(topLevel *cobra.Command) {
	var choice string

	cmd := &cobra.Command{
		Use:       "theme [light|dark]",
		Short:     "Show or set the display theme preference",
		ValidArgs: []string{"light", "dark"},
		Example: `
ponder theme
ponder theme dark
`,
		Args: func(_ *cobra.Command, args []string) error {
			switch len(args) {
			case 0:
			case 1:
				choice = args[0]
			default:
				return errors.New("at most one theme")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			t := theme.Theme{
				Set:         choice,
				Persistence: p,
			}
			return output.HandleError(t.Do(context.Background()))
		},
	}
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
