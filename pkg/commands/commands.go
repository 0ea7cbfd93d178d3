package commands

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/commands/options"
	"tableflip.dev/gratitude/pkg/store"
)

// opener returns a ready journal. Commands close it when done.
type opener func() (*app.App, error)

func New() *cobra.Command {
	return NewWithOpener(func() (*app.App, error) {
		return app.Open(nil)
	})
}

// NewWithOpener builds the command tree around a custom journal source.
func NewWithOpener(open func() (*app.App, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gratitude",
		Short: options.Wrap80("A gratitude journal for the command line. Pick what you are thankful for, add a few words, keep the streak going."),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
				return cmd.Help()
			}
			return promptNext(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String(store.KeyPath, "", "Directory the journal is stored in (default ~/.gratitude.db).")
	flags.String(store.KeyLocale, "", "Locale for entry dates, de-DE or en-US.")
	flags.Bool(store.KeyDebug, false, "Log debug output to stderr.")
	_ = viper.BindPFlag(store.KeyPath, flags.Lookup(store.KeyPath))
	_ = viper.BindPFlag(store.KeyLocale, flags.Lookup(store.KeyLocale))
	_ = viper.BindPFlag(store.KeyDebug, flags.Lookup(store.KeyDebug))

	AddCommands(cmd, open)
	return cmd
}

func AddCommands(topLevel *cobra.Command, open opener) {
	addAdd(topLevel, open)
	addEdit(topLevel, open)
	addDelete(topLevel, open)
	addList(topLevel, open)
	addStreak(topLevel, open)
	addCategories(topLevel, open)
	addInfo(topLevel, open)
	addUI(topLevel, open)
	addVersion(topLevel)
	addCompletions(topLevel)
}
