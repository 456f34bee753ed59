package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ponder/pkg/commands/options"
	"tableflip.dev/ponder/pkg/runner/transfer"
	"tableflip.dev/ponder/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	eo := &options.ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the whole journal as JSON",
		Example: `
ponder export
ponder export --output auto
ponder export --output backup.json
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			e := transfer.Export{
				Output:      eo.Output,
				Persistence: p,
			}
			return output.HandleError(e.Do(context.Background()))
		},
	}
	options.AddExportArgs(cmd, eo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
