package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/goleak"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string     { return t.path }
func (t testConfig) Locale() string       { return "de-DE" }
func (t testConfig) Categories() []string { return nil }
func (t testConfig) Debug() bool          { return false }
func (t testConfig) LogFile() string      { return "" }

func TestPersistenceReadWrite(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	if _, err := p.Read("gratitude-streak"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if p.Has("gratitude-streak") {
		t.Fatalf("unexpected key present")
	}
	if err := p.Write("gratitude-streak", []byte("3")); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := p.Read("gratitude-streak")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "3" {
		t.Fatalf("expected 3, got %q", got)
	}
	keys := p.Keys(context.Background())
	if len(keys) != 1 || keys[0] != "gratitude-streak" {
		t.Fatalf("unexpected keys %v", keys)
	}
	if err := p.Erase("gratitude-streak"); err != nil {
		t.Fatalf("erase: %v", err)
	}
	if err := p.Erase("gratitude-streak"); err != nil {
		t.Fatalf("erasing a missing key should be a no-op: %v", err)
	}
}

func TestPersistenceSurvivesReload(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := p.Write("gratitude-entries", []byte("[]")); err != nil {
		t.Fatalf("write: %v", err)
	}

	reopened, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("reload persistence: %v", err)
	}
	got, err := reopened.Read("gratitude-entries")
	if err != nil {
		t.Fatalf("read after reload: %v", err)
	}
	if string(got) != "[]" {
		t.Fatalf("unexpected blob %q", got)
	}
}

func TestPersistenceSeesOtherInstanceWrites(t *testing.T) {
	base := t.TempDir()
	first, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	second, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	if err := first.Write("gratitude-streak", []byte("1")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got, err := first.Read("gratitude-streak"); err != nil || string(got) != "1" {
		t.Fatalf("expected 1, got %q (%v)", got, err)
	}

	if err := second.Write("gratitude-streak", []byte("2")); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := first.Read("gratitude-streak")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "2" {
		t.Fatalf("expected the other instance's write, got %q", got)
	}

	if err := second.Erase("gratitude-streak"); err != nil {
		t.Fatalf("erase: %v", err)
	}
	if first.Has("gratitude-streak") {
		t.Fatalf("expected key erased by the other instance to be gone")
	}
	if _, err := first.Read("gratitude-streak"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPersistenceWatchEmitsKeyChanges(t *testing.T) {
	defer goleak.VerifyNone(t)

	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := p.Write("gratitude-streak", []byte("1")); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for done := false; !done; {
		select {
		case evt := <-ch:
			if evt.Key == "" || evt.Key == "gratitude-streak" {
				done = true
				continue
			}
			t.Fatalf("unexpected key %q", evt.Key)
		case <-deadline:
			t.Fatal("timed out waiting for change event")
		}
	}

	cancel()
	for range ch {
	}
}

func TestKeyForPath(t *testing.T) {
	p := &persistence{basePath: "/data"}
	if key, ok := p.keyForPath("/data/gratitude-entries"); !ok || key != "gratitude-entries" {
		t.Fatalf("unexpected key %q %v", key, ok)
	}
	for _, path := range []string{"/data", "/data/.tmp/abc", "/data/.tmp", "/elsewhere/x"} {
		if _, ok := p.keyForPath(path); ok {
			t.Fatalf("expected %s to be ignored", path)
		}
	}
}
