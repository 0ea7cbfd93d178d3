package commands

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/commands/options"
	"tableflip.dev/gratitude/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command, open opener) {
	ido := &options.IDOptions{}
	yo := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "delete <entry id>",
		Aliases: []string{"rm", "remove"},
		Short:   "Delete an entry",
		Example: `
gratitude delete 1760428800000
gratitude delete 1760428800000 --yes
`,
		Args: func(_ *cobra.Command, args []string) error {
			return ido.ParseID(args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, err := open()
			if err != nil {
				return err
			}
			defer a.Close()

			s := remove.Remove{
				App: a,
				ID:  ido.ID,
				Yes: yo.Yes,
				Out: cmd.OutOrStdout(),
			}
			if !yo.Yes && isatty.IsTerminal(os.Stdin.Fd()) {
				s.Confirmer = remove.TerminalConfirmer{Stdin: os.Stdin, Stdout: os.Stdout}
			}
			return s.Do(cmd.Context())
		},
	}

	options.AddConfirmArgs(cmd, yo)

	topLevel.AddCommand(cmd)
}
