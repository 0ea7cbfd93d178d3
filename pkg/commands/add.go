package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/commands/options"
	"tableflip.dev/gratitude/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command, open opener) {
	co := &options.CategoryOptions{}
	io := &options.InteractiveOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add a gratitude entry",
		Example: `
gratitude add -c Familie -c Gesundheit
gratitude add -c Natur Sonnenaufgang am See
gratitude add -i
`,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			s := add.Add{
				App:         a,
				Categories:  co.Categories,
				Text:        strings.Join(args, " "),
				AllowCustom: co.AllowCustom,
				Interactive: io.Interactive,
				Format:      format,
				Out:         cmd.OutOrStdout(),
			}
			return oo.HandleError(cmd.OutOrStdout(), s.Do(cmd.Context()))
		},
	}

	options.AddCategoryArgs(cmd, co)
	options.InteractiveArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	_ = cmd.RegisterFlagCompletionFunc("category", categoryCompletions(open))

	topLevel.AddCommand(cmd)
}
