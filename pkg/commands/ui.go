package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command, open opener) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
gratitude ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := open()
			if err != nil {
				return err
			}
			defer a.Close()

			i := ui.UI{App: a}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
