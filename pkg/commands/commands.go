package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/ponder/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "ponder",
		Short: base.Wrap80("A daily reflection journal on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addToday(topLevel)
	addWrite(topLevel)
	addHistory(topLevel)
	addStats(topLevel)
	addPrompts(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addClear(topLevel)
	addTheme(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}
