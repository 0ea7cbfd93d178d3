// Package entry defines the persisted gratitude record.
package entry

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// MaxCategories is the largest number of categories a single entry may carry.
const MaxCategories = 10

var (
	// ErrEmpty is returned when an entry has neither categories nor text.
	ErrEmpty = errors.New("entry: needs at least one category or some text")
	// ErrTooManyCategories is returned when more than MaxCategories are set.
	ErrTooManyCategories = fmt.Errorf("entry: more than %d categories", MaxCategories)
)

// Entry is one saved gratitude record. ID, Date and Timestamp are fixed at
// creation; only Categories and Text change on edit.
type Entry struct {
	ID         int64    `json:"id" yaml:"id"`
	Date       string   `json:"date" yaml:"date"`
	Categories []string `json:"categories" yaml:"categories"`
	Text       string   `json:"text" yaml:"text"`
	Timestamp  int64    `json:"timestamp" yaml:"timestamp"`
}

// New creates an entry stamped with the creation time t. The display date
// is rendered for locale and never recomputed afterwards.
func New(t time.Time, locale string, categories []string, text string) *Entry {
	ms := t.UnixMilli()
	return &Entry{
		ID:         ms,
		Date:       FormatDate(t, locale),
		Categories: append([]string{}, categories...),
		Text:       strings.TrimSpace(text),
		Timestamp:  ms,
	}
}

// Created returns the creation time.
func (e *Entry) Created() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// HasContent reports whether the entry carries at least one category or
// non-blank text.
func (e *Entry) HasContent() bool {
	return len(e.Categories) > 0 || strings.TrimSpace(e.Text) != ""
}

// HasCategory reports whether name is one of the entry's categories.
func (e *Entry) HasCategory(name string) bool {
	for _, c := range e.Categories {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}

// Validate checks the structural invariants of a stored entry.
func (e *Entry) Validate() error {
	if e.ID <= 0 {
		return fmt.Errorf("entry: invalid id %d", e.ID)
	}
	if e.Timestamp <= 0 {
		return fmt.Errorf("entry %d: invalid timestamp %d", e.ID, e.Timestamp)
	}
	if len(e.Categories) > MaxCategories {
		return fmt.Errorf("entry %d: %w", e.ID, ErrTooManyCategories)
	}
	seen := make(map[string]struct{}, len(e.Categories))
	for _, c := range e.Categories {
		if strings.TrimSpace(c) == "" {
			return fmt.Errorf("entry %d: blank category", e.ID)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("entry %d: duplicate category %q", e.ID, c)
		}
		seen[c] = struct{}{}
	}
	if !e.HasContent() {
		return fmt.Errorf("entry %d: %w", e.ID, ErrEmpty)
	}
	return nil
}

// Clone returns a deep copy.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Categories = append([]string{}, e.Categories...)
	return &cp
}

func (e *Entry) String() string {
	parts := make([]string, 0, 2)
	if len(e.Categories) > 0 {
		parts = append(parts, strings.Join(e.Categories, ", "))
	}
	if e.Text != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Text))
	}
	return fmt.Sprintf("%s: %s", e.Date, strings.Join(parts, " "))
}
