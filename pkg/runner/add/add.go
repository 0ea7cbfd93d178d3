package add

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/entry"
	"tableflip.dev/gratitude/pkg/printers"
	"tableflip.dev/gratitude/pkg/viewmodel"
)

// Add creates a new entry from categories and text.
type Add struct {
	App *app.App

	Categories  []string
	Text        string
	AllowCustom bool
	Interactive bool
	Format      printers.Format

	Out io.Writer
	// Prompt replaces the interactive huh form, for tests.
	Prompt func(a *Add) error
}

func (n *Add) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not add, no journal")
	}
	if n.Interactive {
		prompt := n.Prompt
		if prompt == nil {
			prompt = askForm
		}
		if err := prompt(n); err != nil {
			return err
		}
	}

	cats, err := n.App.Catalog.Resolve(n.Categories, n.AllowCustom)
	if err != nil {
		return err
	}

	f := n.App.Form
	f.Reset()
	for _, c := range cats {
		if f.IsSelected(c) {
			continue
		}
		if _, err := f.Toggle(c); err != nil {
			return err
		}
	}
	f.SetText(n.Text)

	res, err := f.Submit()
	if err != nil {
		return err
	}
	n.App.Logger.Info("entry created", "id", res.Entry.ID, "streak", n.App.Journal.Streak())

	item := viewmodel.Build([]*entry.Entry{res.Entry}, n.App.Journal.Streak()).Items[0]
	if n.Format != printers.FormatPretty {
		return printers.Encode(n.out(), n.Format, item)
	}
	pp := printers.PrettyPrint{Out: n.out(), ShowID: true}
	pp.Item(item)
	pp.Streak(n.App.Journal.Streak())
	return nil
}

func (n *Add) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}

// askForm collects categories and text with a terminal form.
func askForm(n *Add) error {
	selected := append([]string{}, n.Categories...)
	text := n.Text

	f := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Wofür bist du heute dankbar?").
				Description(fmt.Sprintf("Bis zu %d Kategorien", entry.MaxCategories)).
				Options(huh.NewOptions(n.App.Catalog.Names()...)...).
				Limit(entry.MaxCategories).
				Value(&selected),
			huh.NewText().
				Title("Zusätzliche Gedanken (optional)").
				Placeholder("Beschreibe, was dich heute besonders dankbar gemacht hat...").
				Value(&text),
		),
	)
	if err := f.Run(); err != nil {
		return err
	}

	n.Categories = selected
	n.Text = strings.TrimSpace(text)
	return nil
}
