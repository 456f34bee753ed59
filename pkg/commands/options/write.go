package options

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// WriteOptions carries the reflection text for the write verb.
type WriteOptions struct {
	Text string
}

// ResolveText joins the command arguments, falling back to piped stdin when
// no arguments were given.
func (o *WriteOptions) ResolveText(args []string) error {
	if len(args) > 0 {
		o.Text = strings.Join(args, " ")
		return nil
	}

	fi, err := os.Stdin.Stat()
	if err == nil && fi.Mode()&os.ModeCharDevice == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		o.Text = strings.TrimRight(string(data), "\n")
	}
	return nil
}

// ConfirmOptions gates destructive verbs behind an explicit flag.
type ConfirmOptions struct {
	Confirm bool
}

func AddConfirmArg(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVar(&o.Confirm, "confirm", false,
		"Actually do it. Without this flag the command only explains itself.")
}

// ExportOptions selects where an export lands.
type ExportOptions struct {
	Output string
}

func AddExportArgs(cmd *cobra.Command, o *ExportOptions) {
	cmd.Flags().StringVarP(&o.Output, "output", "o", "",
		`Write to this file instead of stdout; "auto" picks reflections-<date>.json.`)
}
