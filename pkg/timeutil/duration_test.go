package timeutil

import (
	"testing"
	"time"
)

func TestParseWindowEmpty(t *testing.T) {
	dur, label, err := ParseWindow("  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dur != 0 || label != "" {
		t.Fatalf("expected no window, got %v %q", dur, label)
	}
}

func TestParseWindowComposite(t *testing.T) {
	dur, label, err := ParseWindow("1w2d6h")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := (7*24 + 2*24 + 6) * time.Hour
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "1w2d6h" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseWindowGermanUnits(t *testing.T) {
	dur, label, err := ParseWindow("2 Wochen 3 Tage")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dur != 17*24*time.Hour || label != "2w3d" {
		t.Fatalf("unexpected %v %s", dur, label)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"noop", "3y", "0d"} {
		if _, _, err := ParseWindow(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestSinceTruncatesDays(t *testing.T) {
	now := time.Date(2026, time.October, 14, 15, 30, 0, 0, time.Local)
	got, err := Since("1d", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, time.October, 13, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	got, err = Since("2h", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(now.Add(-2 * time.Hour)) {
		t.Fatalf("hour window should not truncate, got %v", got)
	}

	if got, err := Since("", now); err != nil || !got.IsZero() {
		t.Fatalf("expected zero time for empty window, got %v %v", got, err)
	}
}
