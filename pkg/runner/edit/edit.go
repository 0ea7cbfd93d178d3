package edit

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/entry"
	"tableflip.dev/gratitude/pkg/form"
	"tableflip.dev/gratitude/pkg/printers"
	"tableflip.dev/gratitude/pkg/viewmodel"
)

// Edit changes the categories and text of an existing entry.
type Edit struct {
	App *app.App
	ID  int64

	// Text replaces the entry text when non-nil.
	Text *string
	// Categories replaces the selection when SetCategories is true.
	Categories    []string
	SetCategories bool
	// Toggle flips membership of each category after Categories is applied.
	Toggle      []string
	AllowCustom bool

	Out io.Writer
}

func (n *Edit) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not edit, no journal")
	}
	f := n.App.Form
	f.Reset()
	if err := f.Edit(n.ID); err != nil {
		return err
	}
	defer f.Reset()

	if n.SetCategories {
		cats, err := n.App.Catalog.Resolve(n.Categories, n.AllowCustom)
		if err != nil {
			return err
		}
		for _, c := range f.Selected() {
			if _, err := f.Toggle(c); err != nil {
				return err
			}
		}
		for _, c := range cats {
			if f.IsSelected(c) {
				continue
			}
			if _, err := f.Toggle(c); err != nil {
				return err
			}
		}
	}

	toggles, err := n.App.Catalog.Resolve(n.Toggle, n.AllowCustom)
	if err != nil {
		return err
	}
	for _, c := range toggles {
		if _, err := f.Toggle(c); err != nil {
			return err
		}
	}
	if n.Text != nil {
		f.SetText(*n.Text)
	}

	res, err := f.Submit()
	if errors.Is(err, form.ErrNothingToSave) {
		return fmt.Errorf("edit would leave entry %d empty, use delete instead: %w", n.ID, err)
	}
	if err != nil {
		return err
	}
	n.App.Logger.Info("entry updated", "id", res.Entry.ID)

	if n.Out != nil {
		pp := printers.PrettyPrint{Out: n.Out, ShowID: true}
		pp.Item(viewmodel.Build([]*entry.Entry{res.Entry}, n.App.Journal.Streak()).Items[0])
	}
	return nil
}
