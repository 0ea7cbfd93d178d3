package options

import (
	"github.com/spf13/cobra"
)

// CategoryOptions captures category selection flags.
type CategoryOptions struct {
	Categories  []string
	AllowCustom bool
}

func AddCategoryArgs(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().StringArrayVarP(&o.Categories, "category", "c", nil,
		Wrap80("Category to tag the entry with, repeat for more. Order is kept."))
	cmd.Flags().BoolVar(&o.AllowCustom, "allow-custom", false,
		"Accept categories that are not in the catalog.")
}

// ListOptions narrows and refreshes the entry list.
type ListOptions struct {
	Since    string
	Category string
	Watch    bool
}

func AddListArgs(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().StringVar(&o.Since, "since", "",
		`Only entries from the given window, example: --since=7d or --since=2w.`)
	cmd.Flags().StringVar(&o.Category, "category", "",
		"Only entries tagged with this category.")
	cmd.Flags().BoolVarP(&o.Watch, "watch", "w", false,
		"Keep running and reprint when the journal changes.")
}
