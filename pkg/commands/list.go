package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/commands/options"
	"tableflip.dev/gratitude/pkg/runner/list"
)

func addList(topLevel *cobra.Command, open opener) {
	ido := &options.IDOptions{}
	lo := &options.ListOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "get"},
		Short:   "List entries, most recent first",
		Example: `
gratitude list
gratitude list --since 7d --category Familie
gratitude list --json
gratitude list --watch
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			format, err := oo.Format()
			if err != nil {
				return err
			}
			a, err := open()
			if err != nil {
				return oo.HandleError(cmd.OutOrStdout(), err)
			}
			defer a.Close()

			s := list.List{
				App:      a,
				ShowID:   ido.ShowID,
				Format:   format,
				Since:    lo.Since,
				Category: lo.Category,
				Watch:    lo.Watch,
				Out:      cmd.OutOrStdout(),
			}
			return oo.HandleError(cmd.OutOrStdout(), s.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, ido)
	options.AddListArgs(cmd, lo)
	options.AddOutputArg(cmd, oo)
	_ = cmd.RegisterFlagCompletionFunc("category", categoryCompletions(open))

	topLevel.AddCommand(cmd)
}
