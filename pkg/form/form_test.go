package form

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/gratitude/pkg/journal"
	"tableflip.dev/gratitude/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string     { return t.path }
func (t testConfig) Locale() string       { return "de-DE" }
func (t testConfig) Categories() []string { return nil }
func (t testConfig) Debug() bool          { return false }
func (t testConfig) LogFile() string      { return "" }

func newController(t *testing.T) (*Controller, store.Persistence) {
	t.Helper()
	kv, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	s, err := journal.Open(kv)
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	c := New(s, "de-DE")
	clock := time.Date(2026, time.October, 14, 8, 0, 0, 0, time.Local)
	c.Now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return c, kv
}

func TestToggleTwiceRestoresSelection(t *testing.T) {
	c, _ := newController(t)
	mustToggle(t, c, "Familie")
	before := c.Selected()

	if on := mustToggle(t, c, "Natur"); !on {
		t.Fatalf("expected Natur selected")
	}
	if on := mustToggle(t, c, "Natur"); on {
		t.Fatalf("expected Natur deselected")
	}
	if diff := cmp.Diff(before, c.Selected()); diff != "" {
		t.Fatalf("selection changed (-want +got):\n%s", diff)
	}
}

func TestOrdinalFollowsSelectionOrder(t *testing.T) {
	c, _ := newController(t)
	mustToggle(t, c, "Familie")
	mustToggle(t, c, "Gesundheit")
	mustToggle(t, c, "Natur")
	mustToggle(t, c, "Familie")

	if got := c.Ordinal("Gesundheit"); got != 1 {
		t.Fatalf("expected Gesundheit at 1, got %d", got)
	}
	if got := c.Ordinal("Natur"); got != 2 {
		t.Fatalf("expected Natur at 2, got %d", got)
	}
	if got := c.Ordinal("Familie"); got != 0 {
		t.Fatalf("expected Familie unselected, got %d", got)
	}
}

func TestEleventhCategoryRejected(t *testing.T) {
	c, _ := newController(t)
	for i := 0; i < 10; i++ {
		mustToggle(t, c, fmt.Sprintf("c%d", i))
	}
	on, err := c.Toggle("c10")
	if !errors.Is(err, ErrSelectionFull) || on {
		t.Fatalf("expected ErrSelectionFull, got %v %v", on, err)
	}
	if len(c.Selected()) != 10 {
		t.Fatalf("selection exceeded cap: %d", len(c.Selected()))
	}
	// Deselecting still works at the cap.
	if on := mustToggle(t, c, "c0"); on {
		t.Fatalf("expected c0 deselected")
	}
}

func TestSubmitEmptyIsNoop(t *testing.T) {
	c, kv := newController(t)
	c.SetText("   \n\t")
	if _, err := c.Submit(); !errors.Is(err, ErrNothingToSave) {
		t.Fatalf("expected ErrNothingToSave, got %v", err)
	}
	if c.Store.Len() != 0 || c.Store.Streak() != 0 {
		t.Fatalf("empty submit mutated store")
	}
	if kv.Has(journal.EntriesKey) {
		t.Fatalf("empty submit wrote to persistence")
	}
}

func TestSubmitCreates(t *testing.T) {
	c, _ := newController(t)
	mustToggle(t, c, "Familie")
	mustToggle(t, c, "Gesundheit")

	res, err := c.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.Created {
		t.Fatalf("expected creation")
	}
	head := c.Store.Entries()[0]
	if diff := cmp.Diff([]string{"Familie", "Gesundheit"}, head.Categories); diff != "" {
		t.Fatalf("unexpected categories (-want +got):\n%s", diff)
	}
	if head.Text != "" {
		t.Fatalf("expected empty text, got %q", head.Text)
	}
	if head.Date != "Mittwoch, 14. Oktober 2026" {
		t.Fatalf("unexpected date %q", head.Date)
	}
	if c.Store.Streak() != 1 {
		t.Fatalf("expected streak 1, got %d", c.Store.Streak())
	}
	if c.CanSubmit() || len(c.Selected()) != 0 {
		t.Fatalf("form not reset after submit")
	}
}

func TestEditPreservesIdentity(t *testing.T) {
	c, _ := newController(t)
	mustToggle(t, c, "Arbeit")
	first, err := c.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	c.SetText("zweiter")
	if _, err := c.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := c.Edit(first.Entry.ID); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if c.Editing() == nil {
		t.Fatalf("expected edit target")
	}
	if diff := cmp.Diff([]string{"Arbeit"}, c.Selected()); diff != "" {
		t.Fatalf("edit did not load categories (-want +got):\n%s", diff)
	}
	mustToggle(t, c, "Arbeit")
	mustToggle(t, c, "Erfolg")
	c.SetText("Projekt fertig")

	res, err := c.Submit()
	if err != nil {
		t.Fatalf("submit edit: %v", err)
	}
	if res.Created {
		t.Fatalf("edit must not create")
	}
	got := c.Store.Entries()[1]
	if got.ID != first.Entry.ID || got.Date != first.Entry.Date || got.Timestamp != first.Entry.Timestamp {
		t.Fatalf("identity changed: %+v vs %+v", got, first.Entry)
	}
	if got.Text != "Projekt fertig" || got.Categories[0] != "Erfolg" {
		t.Fatalf("edit not applied: %+v", got)
	}
	if c.Store.Streak() != 2 {
		t.Fatalf("edit changed streak to %d", c.Store.Streak())
	}
	if c.Editing() != nil {
		t.Fatalf("edit target not cleared")
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	c, kv := newController(t)
	c.SetText("Sonne")
	res, err := c.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	id := res.Entry.ID

	var asked string
	decline := ConfirmFunc(func(prompt string) (bool, error) {
		asked = prompt
		return false, nil
	})
	deleted, err := c.Delete(id, decline)
	if err != nil || deleted {
		t.Fatalf("declined delete should be a no-op, got %v %v", deleted, err)
	}
	if asked != DeletePrompt {
		t.Fatalf("unexpected prompt %q", asked)
	}
	if c.Store.Len() != 1 {
		t.Fatalf("declined delete removed entry")
	}

	if err := c.Edit(id); err != nil {
		t.Fatalf("edit: %v", err)
	}
	accept := ConfirmFunc(func(string) (bool, error) { return true, nil })
	if deleted, err := c.Delete(id, accept); err != nil || !deleted {
		t.Fatalf("expected delete, got %v %v", deleted, err)
	}
	if c.Editing() != nil {
		t.Fatalf("deleting the edit target must reset the form")
	}

	reloaded, err := journal.Open(kv)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if _, err := reloaded.Get(id); !errors.Is(err, journal.ErrNotFound) {
		t.Fatalf("deleted entry present after reload: %v", err)
	}
}

func TestDeleteConfirmError(t *testing.T) {
	c, _ := newController(t)
	c.SetText("x")
	res, err := c.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	boom := ConfirmFunc(func(string) (bool, error) { return false, errors.New("no tty") })
	if _, err := c.Delete(res.Entry.ID, boom); err == nil {
		t.Fatalf("expected confirm error")
	}
	if c.Store.Len() != 1 {
		t.Fatalf("entry removed despite confirm error")
	}
}

func TestResetClearsEverything(t *testing.T) {
	c, _ := newController(t)
	c.SetText("a")
	res, _ := c.Submit()
	_ = c.Edit(res.Entry.ID)
	mustToggle(t, c, "Ruhe")
	c.Reset()
	if c.CanSubmit() || c.Editing() != nil || c.Text() != "" {
		t.Fatalf("reset left state behind")
	}
}

func TestSetMode(t *testing.T) {
	c, _ := newController(t)
	if c.Mode() != ModeQuick {
		t.Fatalf("expected quick mode by default")
	}
	if err := c.SetMode(ModeJournal); err != nil {
		t.Fatalf("set mode: %v", err)
	}
	if err := c.SetMode("poem"); err == nil {
		t.Fatalf("expected unknown mode error")
	}
	if c.Mode() != ModeJournal {
		t.Fatalf("mode changed by invalid SetMode")
	}
}

func mustToggle(t *testing.T, c *Controller, category string) bool {
	t.Helper()
	on, err := c.Toggle(category)
	if err != nil {
		t.Fatalf("toggle %s: %v", category, err)
	}
	return on
}
