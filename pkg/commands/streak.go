package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/commands/options"
	"tableflip.dev/gratitude/pkg/runner/categories"
	"tableflip.dev/gratitude/pkg/runner/streak"
)

func addStreak(topLevel *cobra.Command, open opener) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "streak",
		Short: "Show how many entries you have written",
		Example: `
gratitude streak
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

			s := streak.Streak{App: a, Format: format, Out: cmd.OutOrStdout()}
			return oo.HandleError(cmd.OutOrStdout(), s.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addCategories(topLevel *cobra.Command, open opener) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the category catalog",
		Example: `
gratitude categories
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

			s := categories.Categories{App: a, Format: format, Out: cmd.OutOrStdout()}
			return oo.HandleError(cmd.OutOrStdout(), s.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
