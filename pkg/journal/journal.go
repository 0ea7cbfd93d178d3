// Package journal holds the ordered list of gratitude entries and the streak
// counter, mirrored to a key-value backend on every mutation.
package journal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"tableflip.dev/gratitude/pkg/entry"
	"tableflip.dev/gratitude/pkg/logging"
	"tableflip.dev/gratitude/pkg/store"
)

// Keys the journal persists under.
const (
	EntriesKey = "gratitude-entries"
	StreakKey  = "gratitude-streak"

	corruptSuffix = ".corrupt"
)

// Tracks reports whether a change to key can alter the loaded journal. An
// empty key stands for an unattributed change.
func Tracks(key string) bool {
	return key == "" || key == EntriesKey || key == StreakKey
}

// ErrNotFound is returned when no entry has the requested id.
var ErrNotFound = errors.New("journal: entry not found")

// Backend is the subset of store.Persistence the journal needs.
type Backend interface {
	Read(key string) ([]byte, error)
	Write(key string, val []byte) error
}

// Patch carries the mutable fields of an entry.
type Patch struct {
	Categories []string
	Text       string
}

// Store is the in-memory entry list, most recent first.
type Store struct {
	kv      Backend
	logger  *log.Logger
	entries []*entry.Entry
	streak  int
}

// Option customises a Store.
type Option func(*Store)

// WithLogger routes load warnings to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns an empty store bound to kv. Call Load to read persisted state.
func New(kv Backend, opts ...Option) *Store {
	s := &Store{kv: kv, logger: logging.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open is New followed by Load.
func Open(kv Backend, opts ...Option) (*Store, error) {
	s := New(kv, opts...)
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load replaces the in-memory state with what is persisted. Missing keys
// yield an empty journal. A blob that does not decode is set aside under
// "<key>.corrupt" and treated as empty; entries that fail validation are
// dropped. Only backend read failures are returned.
func (s *Store) Load() error {
	s.entries = nil
	s.streak = 0

	raw, err := s.kv.Read(EntriesKey)
	switch {
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		return fmt.Errorf("journal: load entries: %w", err)
	default:
		s.entries = s.decodeEntries(raw)
	}

	raw, err = s.kv.Read(StreakKey)
	switch {
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		return fmt.Errorf("journal: load streak: %w", err)
	default:
		s.streak = s.decodeStreak(raw)
	}

	s.logger.Debug("journal loaded", "entries", len(s.entries), "streak", s.streak)
	return nil
}

func (s *Store) decodeEntries(raw []byte) []*entry.Entry {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil
	}
	var decoded []*entry.Entry
	if err := json.Unmarshal(raw, &decoded); err != nil {
		s.logger.Warn("entries blob is malformed, starting empty", "key", EntriesKey, "err", err)
		s.keepCorrupt(raw)
		return nil
	}

	seen := make(map[int64]struct{}, len(decoded))
	out := make([]*entry.Entry, 0, len(decoded))
	for i, e := range decoded {
		if e == nil {
			s.logger.Warn("dropping null entry", "index", i)
			continue
		}
		if err := e.Validate(); err != nil {
			s.logger.Warn("dropping invalid entry", "index", i, "err", err)
			continue
		}
		if _, dup := seen[e.ID]; dup {
			s.logger.Warn("dropping duplicate entry", "index", i, "id", e.ID)
			continue
		}
		seen[e.ID] = struct{}{}
		out = append(out, e)
	}
	return out
}

// keepCorrupt copies raw aside unless the same blob is already there, so
// repeated loads of one bad blob do not touch the disk.
func (s *Store) keepCorrupt(raw []byte) {
	key := EntriesKey + corruptSuffix
	if kept, err := s.kv.Read(key); err == nil && bytes.Equal(kept, raw) {
		return
	}
	if err := s.kv.Write(key, raw); err != nil {
		s.logger.Error("could not keep malformed blob", "err", err)
	}
}

func (s *Store) decodeStreak(raw []byte) int {
	n, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil || n < 0 {
		s.logger.Warn("streak is malformed, resetting", "key", StreakKey, "value", string(raw))
		return 0
	}
	return n
}

// Save rewrites both the entry list and the streak counter.
func (s *Store) Save() error {
	list := s.entries
	if list == nil {
		list = []*entry.Entry{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("journal: encode entries: %w", err)
	}
	if err := s.kv.Write(EntriesKey, data); err != nil {
		return fmt.Errorf("journal: save entries: %w", err)
	}
	if err := s.kv.Write(StreakKey, []byte(strconv.Itoa(s.streak))); err != nil {
		return fmt.Errorf("journal: save streak: %w", err)
	}
	return nil
}

// NextID returns an id for an entry created at t that no stored entry uses.
func (s *Store) NextID(t time.Time) int64 {
	id := t.UnixMilli()
	for _, e := range s.entries {
		if e.ID >= id {
			id = e.ID + 1
		}
	}
	return id
}

// Add validates e, inserts it at the head of the list, increments the streak
// and saves. An id collision is resolved by assigning NextID.
func (s *Store) Add(e *entry.Entry) error {
	if e == nil {
		return errors.New("journal: nil entry")
	}
	if err := e.Validate(); err != nil {
		return err
	}
	if s.index(e.ID) >= 0 {
		e.ID = s.NextID(time.UnixMilli(e.ID))
	}

	prev, prevStreak := s.entries, s.streak
	s.entries = append([]*entry.Entry{e.Clone()}, s.entries...)
	s.streak++
	if err := s.Save(); err != nil {
		s.entries, s.streak = prev, prevStreak
		return err
	}
	s.logger.Debug("entry added", "id", e.ID, "streak", s.streak)
	return nil
}

// Update replaces the categories and text of the entry with the given id,
// keeping its id, date, timestamp and list position.
func (s *Store) Update(id int64, p Patch) (*entry.Entry, error) {
	i := s.index(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	updated := s.entries[i].Clone()
	updated.Categories = append([]string{}, p.Categories...)
	updated.Text = strings.TrimSpace(p.Text)
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	prev := s.entries[i]
	s.entries[i] = updated
	if err := s.Save(); err != nil {
		s.entries[i] = prev
		return nil, err
	}
	s.logger.Debug("entry updated", "id", id)
	return updated.Clone(), nil
}

// Remove deletes the entry with the given id. The streak is left alone.
func (s *Store) Remove(id int64) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	prev := s.entries
	next := make([]*entry.Entry, 0, len(s.entries)-1)
	next = append(next, s.entries[:i]...)
	next = append(next, s.entries[i+1:]...)
	s.entries = next
	if err := s.Save(); err != nil {
		s.entries = prev
		return err
	}
	s.logger.Debug("entry removed", "id", id)
	return nil
}

// Entries returns copies of all entries, most recent first.
func (s *Store) Entries() []*entry.Entry {
	out := make([]*entry.Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Clone()
	}
	return out
}

// Get returns a copy of the entry with the given id.
func (s *Store) Get(id int64) (*entry.Entry, error) {
	i := s.index(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return s.entries[i].Clone(), nil
}

// Streak is the lifetime number of entries created. It is not a count of
// consecutive days.
func (s *Store) Streak() int {
	return s.streak
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	return len(s.entries)
}

func (s *Store) index(id int64) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
