package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/commands/options"
	"tableflip.dev/gratitude/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command, open opener) {
	ido := &options.IDOptions{}
	co := &options.CategoryOptions{}
	var (
		text   string
		toggle []string
	)

	cmd := &cobra.Command{
		Use:   "edit <entry id>",
		Short: "Change the categories or text of an entry",
		Example: `
gratitude edit 1760428800000 --text "Kaffee mit Oma"
gratitude edit 1760428800000 --toggle Sonne
gratitude edit 1760428800000 -c Familie -c Liebe
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

			s := edit.Edit{
				App:           a,
				ID:            ido.ID,
				Categories:    co.Categories,
				SetCategories: cmd.Flags().Changed("category"),
				Toggle:        toggle,
				AllowCustom:   co.AllowCustom,
				Out:           cmd.OutOrStdout(),
			}
			if cmd.Flags().Changed("text") {
				s.Text = &text
			}
			return s.Do(cmd.Context())
		},
	}

	options.AddCategoryArgs(cmd, co)
	cmd.Flags().StringVar(&text, "text", "", "Replace the entry text.")
	cmd.Flags().StringArrayVar(&toggle, "toggle", nil, "Flip a category on or off, repeat for more.")
	_ = cmd.RegisterFlagCompletionFunc("category", categoryCompletions(open))
	_ = cmd.RegisterFlagCompletionFunc("toggle", categoryCompletions(open))

	topLevel.AddCommand(cmd)
}
