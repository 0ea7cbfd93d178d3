// Package category defines the catalog of gratitude categories.
package category

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknown is returned when a category is not part of the catalog.
var ErrUnknown = errors.New("category: unknown")

// Defaults is the built-in catalog, in display order.
var Defaults = []string{
	"Familie",
	"Freunde",
	"Gesundheit",
	"Natur",
	"Arbeit",
	"Essen",
	"Zuhause",
	"Liebe",
	"Erfolg",
	"Freizeit",
	"Lernen",
	"Musik",
	"Sonne",
	"Ruhe",
}

// Catalog is an ordered set of selectable categories.
type Catalog struct {
	names []string
	index map[string]string
}

// NewCatalog builds a catalog from names, dropping blanks and case-insensitive
// duplicates. An empty input yields the default catalog.
func NewCatalog(names ...string) *Catalog {
	if len(names) == 0 {
		names = Defaults
	}
	c := &Catalog{index: make(map[string]string, len(names))}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		key := strings.ToLower(n)
		if _, dup := c.index[key]; dup {
			continue
		}
		c.index[key] = n
		c.names = append(c.names, n)
	}
	return c
}

// Names returns the catalog in display order.
func (c *Catalog) Names() []string {
	return append([]string{}, c.names...)
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Parse resolves raw case-insensitively to its canonical catalog spelling.
func (c *Catalog) Parse(raw string) (string, error) {
	name, ok := c.index[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknown, raw)
	}
	return name, nil
}

// Resolve parses every name. When allowCustom is set, unknown names are kept
// trimmed but otherwise verbatim.
func (c *Catalog) Resolve(raw []string, allowCustom bool) ([]string, error) {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		name, err := c.Parse(r)
		if err != nil {
			if !allowCustom || strings.TrimSpace(r) == "" {
				return nil, err
			}
			name = strings.TrimSpace(r)
		}
		out = append(out, name)
	}
	return out, nil
}
