// Package form holds the transient state of the entry form: selected
// categories, the text draft and the entry being edited, if any.
package form

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/gratitude/pkg/entry"
	"tableflip.dev/gratitude/pkg/journal"
)

var (
	// ErrNothingToSave is returned by Submit when there is no category and no text.
	ErrNothingToSave = errors.New("form: nothing to save")
	// ErrSelectionFull is returned by Toggle when the selection is at capacity.
	ErrSelectionFull = fmt.Errorf("form: at most %d categories can be selected", entry.MaxCategories)
)

// Mode switches between the quick picker and free journaling. It only affects
// what a front-end shows; entries are built the same way in both.
type Mode string

const (
	ModeQuick   Mode = "quick"
	ModeJournal Mode = "journal"
)

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) (bool, error)

func (f ConfirmFunc) Confirm(prompt string) (bool, error) { return f(prompt) }

// DeletePrompt is the question asked before an entry is removed.
const DeletePrompt = "Eintrag wirklich löschen?"

// Controller owns the form state and writes through to a journal.Store.
type Controller struct {
	Store  *journal.Store
	Locale string
	Now    func() time.Time

	mode     Mode
	selected []string
	text     string
	editing  *entry.Entry
}

// New returns a controller in quick mode with an empty form.
func New(s *journal.Store, locale string) *Controller {
	return &Controller{Store: s, Locale: locale, Now: time.Now, mode: ModeQuick}
}

// Result describes what Submit did.
type Result struct {
	Entry   *entry.Entry
	Created bool
}

// Toggle deselects category if it is selected, otherwise appends it. It
// returns whether category is selected afterwards.
func (c *Controller) Toggle(category string) (bool, error) {
	if i := c.position(category); i >= 0 {
		c.selected = append(c.selected[:i:i], c.selected[i+1:]...)
		return false, nil
	}
	if len(c.selected) >= entry.MaxCategories {
		return false, ErrSelectionFull
	}
	c.selected = append(c.selected, category)
	return true, nil
}

// Ordinal is the 1-based selection position of category, or 0.
func (c *Controller) Ordinal(category string) int {
	return c.position(category) + 1
}

// IsSelected reports whether category is in the selection.
func (c *Controller) IsSelected(category string) bool {
	return c.position(category) >= 0
}

// Selected returns the selection in order.
func (c *Controller) Selected() []string {
	return append([]string{}, c.selected...)
}

// SetText replaces the draft.
func (c *Controller) SetText(text string) {
	c.text = text
}

// Text returns the draft as typed.
func (c *Controller) Text() string {
	return c.text
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode {
	if c.mode == "" {
		return ModeQuick
	}
	return c.mode
}

// SetMode switches the mode. The form state is kept.
func (c *Controller) SetMode(m Mode) error {
	switch m {
	case ModeQuick, ModeJournal:
		c.mode = m
		return nil
	}
	return fmt.Errorf("form: unknown mode %q", m)
}

// Editing returns the edit target, or nil when a submit would create.
func (c *Controller) Editing() *entry.Entry {
	return c.editing.Clone()
}

// CanSubmit reports whether Submit would save something.
func (c *Controller) CanSubmit() bool {
	return len(c.selected) > 0 || strings.TrimSpace(c.text) != ""
}

// Edit loads the entry with id into the form and makes it the edit target.
func (c *Controller) Edit(id int64) error {
	e, err := c.Store.Get(id)
	if err != nil {
		return err
	}
	c.editing = e
	c.selected = append([]string{}, e.Categories...)
	c.text = e.Text
	return nil
}

// Submit saves the form. With an edit target the entry is updated in place,
// otherwise a new entry is created. The form is reset after a successful save.
func (c *Controller) Submit() (*Result, error) {
	if !c.CanSubmit() {
		return nil, ErrNothingToSave
	}

	if c.editing != nil {
		updated, err := c.Store.Update(c.editing.ID, journal.Patch{
			Categories: c.selected,
			Text:       c.text,
		})
		if err != nil {
			return nil, err
		}
		c.Reset()
		return &Result{Entry: updated}, nil
	}

	now := c.now()
	e := entry.New(now, c.Locale, c.selected, c.text)
	e.ID = c.Store.NextID(now)
	if err := c.Store.Add(e); err != nil {
		return nil, err
	}
	c.Reset()
	return &Result{Entry: e.Clone(), Created: true}, nil
}

// Delete removes the entry with id once confirm agrees. A declined prompt is
// not an error and reports false. A nil confirm deletes without asking.
func (c *Controller) Delete(id int64, confirm Confirmer) (bool, error) {
	if _, err := c.Store.Get(id); err != nil {
		return false, err
	}
	if confirm != nil {
		ok, err := confirm.Confirm(DeletePrompt)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	if err := c.Store.Remove(id); err != nil {
		return false, err
	}
	if c.editing != nil && c.editing.ID == id {
		c.Reset()
	}
	return true, nil
}

// Reset clears the selection, the draft and the edit target.
func (c *Controller) Reset() {
	c.selected = nil
	c.text = ""
	c.editing = nil
}

func (c *Controller) position(category string) int {
	for i, s := range c.selected {
		if s == category {
			return i
		}
	}
	return -1
}

func (c *Controller) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}
