package journal

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/gratitude/pkg/entry"
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

func newBackend(t *testing.T) store.Persistence {
	t.Helper()
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p
}

func testEntry(ms int64, categories []string, text string) *entry.Entry {
	return entry.New(time.UnixMilli(ms), "de-DE", categories, text)
}

func TestLoadEmpty(t *testing.T) {
	s, err := Open(newBackend(t))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.Len() != 0 || s.Streak() != 0 {
		t.Fatalf("expected empty journal, got %d entries streak %d", s.Len(), s.Streak())
	}
}

func TestAddPrependsAndCountsStreak(t *testing.T) {
	kv := newBackend(t)
	s, err := Open(kv)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	first := testEntry(1000, []string{"Familie"}, "")
	second := testEntry(2000, nil, "Kaffee am Morgen")
	if err := s.Add(first); err != nil {
		t.Fatalf("add first: %v", err)
	}
	if err := s.Add(second); err != nil {
		t.Fatalf("add second: %v", err)
	}

	if s.Len() != 2 || s.Streak() != 2 {
		t.Fatalf("expected 2 entries and streak 2, got %d/%d", s.Len(), s.Streak())
	}
	if s.Entries()[0].ID != 2000 {
		t.Fatalf("expected newest entry first, got %d", s.Entries()[0].ID)
	}

	raw, err := kv.Read(StreakKey)
	if err != nil {
		t.Fatalf("read streak: %v", err)
	}
	if string(raw) != "2" {
		t.Fatalf("expected streak persisted as decimal string, got %q", raw)
	}

	reloaded, err := Open(kv)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if diff := cmp.Diff(s.Entries(), reloaded.Entries()); diff != "" {
		t.Fatalf("entries differ after reload (-want +got):\n%s", diff)
	}
	if reloaded.Streak() != 2 {
		t.Fatalf("expected streak 2 after reload, got %d", reloaded.Streak())
	}
}

func TestAddRejectsEmpty(t *testing.T) {
	s := New(newBackend(t))
	if err := s.Add(testEntry(1000, nil, "   ")); !errors.Is(err, entry.ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	if s.Len() != 0 || s.Streak() != 0 {
		t.Fatalf("rejected add must not mutate")
	}
}

func TestAddResolvesIDCollision(t *testing.T) {
	s := New(newBackend(t))
	a := testEntry(1000, []string{"Natur"}, "")
	b := testEntry(1000, []string{"Ruhe"}, "")
	if err := s.Add(a); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Add(b); err != nil {
		t.Fatalf("add: %v", err)
	}
	if b.ID != 1001 {
		t.Fatalf("expected bumped id 1001, got %d", b.ID)
	}
	if b.Timestamp != 1000 {
		t.Fatalf("timestamp must keep creation time, got %d", b.Timestamp)
	}
}

func TestUpdateKeepsIdentityAndPosition(t *testing.T) {
	s := New(newBackend(t))
	for _, ms := range []int64{1000, 2000, 3000} {
		if err := s.Add(testEntry(ms, []string{"Arbeit"}, "")); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	before, _ := s.Get(2000)

	got, err := s.Update(2000, Patch{Categories: []string{"Liebe", "Sonne"}, Text: " warm "})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	want := &entry.Entry{
		ID:         before.ID,
		Date:       before.Date,
		Categories: []string{"Liebe", "Sonne"},
		Text:       "warm",
		Timestamp:  before.Timestamp,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected update (-want +got):\n%s", diff)
	}
	if s.Entries()[1].ID != 2000 {
		t.Fatalf("updated entry moved")
	}
	if s.Streak() != 3 {
		t.Fatalf("update must not change streak, got %d", s.Streak())
	}

	if _, err := s.Update(42, Patch{Text: "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemovePersists(t *testing.T) {
	kv := newBackend(t)
	s := New(kv)
	for _, ms := range []int64{1000, 2000} {
		if err := s.Add(testEntry(ms, nil, "a")); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if err := s.Remove(1000); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := s.Remove(1000); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	reloaded, err := Open(kv)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if _, err := reloaded.Get(1000); !errors.Is(err, ErrNotFound) {
		t.Fatalf("removed entry present after reload")
	}
	if reloaded.Streak() != 2 {
		t.Fatalf("remove must not decrement streak, got %d", reloaded.Streak())
	}
}

func TestLoadMalformedEntries(t *testing.T) {
	kv := newBackend(t)
	if err := kv.Write(EntriesKey, []byte("{not json")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := kv.Write(StreakKey, []byte("many")); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s, err := Open(kv)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.Len() != 0 || s.Streak() != 0 {
		t.Fatalf("expected empty state, got %d entries streak %d", s.Len(), s.Streak())
	}
	kept, err := kv.Read(EntriesKey + corruptSuffix)
	if err != nil {
		t.Fatalf("expected malformed blob to be kept: %v", err)
	}
	if string(kept) != "{not json" {
		t.Fatalf("unexpected kept blob %q", kept)
	}
}

func TestLoadDropsInvalidEntries(t *testing.T) {
	kv := newBackend(t)
	blob := `[
		{"id": 3, "date": "x", "categories": ["Familie"], "text": "", "timestamp": 3},
		null,
		{"id": 0, "date": "x", "categories": [], "text": "no id", "timestamp": 2},
		{"id": 2, "date": "x", "categories": [], "text": "", "timestamp": 2},
		{"id": 3, "date": "x", "categories": [], "text": "dup", "timestamp": 3},
		{"id": 1, "date": "x", "categories": [], "text": "ok", "timestamp": 1}
	]`
	if err := kv.Write(EntriesKey, []byte(blob)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := kv.Write(StreakKey, []byte(" 7 ")); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s, err := Open(kv)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	var ids []int64
	for _, e := range s.Entries() {
		ids = append(ids, e.ID)
	}
	if diff := cmp.Diff([]int64{3, 1}, ids); diff != "" {
		t.Fatalf("unexpected ids (-want +got):\n%s", diff)
	}
	if s.Streak() != 7 {
		t.Fatalf("expected streak 7, got %d", s.Streak())
	}
}

type failingBackend struct {
	Backend
	fail bool
}

func (f *failingBackend) Write(key string, val []byte) error {
	if f.fail {
		return errors.New("disk full")
	}
	return f.Backend.Write(key, val)
}

func TestAddRollsBackOnSaveFailure(t *testing.T) {
	kv := &failingBackend{Backend: newBackend(t)}
	s := New(kv)
	if err := s.Add(testEntry(1000, nil, "a")); err != nil {
		t.Fatalf("add: %v", err)
	}
	kv.fail = true
	if err := s.Add(testEntry(2000, nil, "b")); err == nil {
		t.Fatalf("expected save error")
	}
	if s.Len() != 1 || s.Streak() != 1 {
		t.Fatalf("expected rollback, got %d entries streak %d", s.Len(), s.Streak())
	}
}

func TestEntriesReturnsCopies(t *testing.T) {
	s := New(newBackend(t))
	if err := s.Add(testEntry(1000, []string{"Musik"}, "")); err != nil {
		t.Fatalf("add: %v", err)
	}
	s.Entries()[0].Categories[0] = "Lärm"
	if got, _ := s.Get(1000); got.Categories[0] != "Musik" {
		t.Fatalf("Entries leaked internal state")
	}
}

type countingBackend struct {
	Backend
	writes map[string]int
}

func (c *countingBackend) Write(key string, val []byte) error {
	c.writes[key]++
	return c.Backend.Write(key, val)
}

func TestLoadMalformedKeepsCopyOnce(t *testing.T) {
	kv := &countingBackend{Backend: newBackend(t), writes: map[string]int{}}
	if err := kv.Backend.Write(EntriesKey, []byte("[{")); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s := New(kv)
	for i := 0; i < 3; i++ {
		if err := s.Load(); err != nil {
			t.Fatalf("load: %v", err)
		}
	}
	if got := kv.writes[EntriesKey+corruptSuffix]; got != 1 {
		t.Fatalf("expected the malformed blob to be copied once, got %d writes", got)
	}

	if err := kv.Backend.Write(EntriesKey, []byte("[{{")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := s.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := kv.writes[EntriesKey+corruptSuffix]; got != 2 {
		t.Fatalf("expected a new malformed blob to be copied, got %d writes", got)
	}
}

func TestTracks(t *testing.T) {
	for key, want := range map[string]bool{
		"":                         true,
		EntriesKey:                 true,
		StreakKey:                  true,
		EntriesKey + corruptSuffix: false,
		"something-else":           false,
	} {
		if got := Tracks(key); got != want {
			t.Fatalf("Tracks(%q): expected %v, got %v", key, want, got)
		}
	}
}
