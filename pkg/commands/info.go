package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command, open opener) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the journal and where it is stored.",
		Example: `
gratitude info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, err := open()
			if err != nil {
				return err
			}
			defer a.Close()

			s := info.Info{App: a, Out: cmd.OutOrStdout()}
			return s.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
