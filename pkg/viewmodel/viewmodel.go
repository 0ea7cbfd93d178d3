// Package viewmodel turns journal entries into a display model that front-ends
// render without touching persistence.
package viewmodel

import (
	"strings"
	"time"

	"tableflip.dev/gratitude/pkg/entry"
)

// EmptyMessage is shown when there is nothing to list.
const EmptyMessage = "Noch keine Einträge vorhanden. Erstelle deinen ersten Dankbarkeits-Moment! 🌟"

// Journal is the display model of the entry list.
type Journal struct {
	Streak       int    `json:"streak" yaml:"streak"`
	Count        int    `json:"count" yaml:"count"`
	Total        int    `json:"total" yaml:"total"`
	Empty        bool   `json:"empty" yaml:"empty"`
	EmptyMessage string `json:"emptyMessage,omitempty" yaml:"emptyMessage,omitempty"`
	Items        []Item `json:"items" yaml:"items"`
}

// Item is one rendered entry.
type Item struct {
	ID         int64     `json:"id" yaml:"id"`
	Date       string    `json:"date" yaml:"date"`
	Created    time.Time `json:"created" yaml:"created"`
	Categories []string  `json:"categories" yaml:"categories"`
	Text       string    `json:"text,omitempty" yaml:"text,omitempty"`
	// Quoted is Text wrapped in quotes, empty when there is no text.
	Quoted string `json:"-" yaml:"-"`
}

// HasCategories reports whether the item shows a category row.
func (i Item) HasCategories() bool { return len(i.Categories) > 0 }

// HasText reports whether the item shows a text row.
func (i Item) HasText() bool { return i.Text != "" }

// Option customises Build.
type Option func(*buildOptions)

type buildOptions struct {
	since    time.Time
	category string
}

// WithSince keeps only entries created at or after t.
func WithSince(t time.Time) Option {
	return func(o *buildOptions) {
		o.since = t
	}
}

// WithCategory keeps only entries tagged with name (case-insensitive).
func WithCategory(name string) Option {
	return func(o *buildOptions) {
		o.category = strings.TrimSpace(name)
	}
}

// Build maps entries, already ordered most recent first, onto a Journal.
func Build(entries []*entry.Entry, streak int, opts ...Option) Journal {
	config := &buildOptions{}
	for _, opt := range opts {
		opt(config)
	}

	j := Journal{Streak: streak, Total: len(entries), Items: []Item{}}
	for _, e := range entries {
		if e == nil || !config.keep(e) {
			continue
		}
		j.Items = append(j.Items, newItem(e))
	}
	j.Count = len(j.Items)
	if j.Count == 0 {
		j.Empty = true
		j.EmptyMessage = EmptyMessage
	}
	return j
}

func (o *buildOptions) keep(e *entry.Entry) bool {
	if !o.since.IsZero() && e.Created().Before(o.since) {
		return false
	}
	if o.category != "" && !e.HasCategory(o.category) {
		return false
	}
	return true
}

func newItem(e *entry.Entry) Item {
	item := Item{
		ID:         e.ID,
		Date:       e.Date,
		Created:    e.Created(),
		Categories: append([]string{}, e.Categories...),
		Text:       e.Text,
	}
	if item.Text != "" {
		item.Quoted = `"` + item.Text + `"`
	}
	return item
}
