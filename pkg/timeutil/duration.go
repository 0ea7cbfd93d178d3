// Package timeutil parses the relative windows accepted by `list --since`.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const day = 24 * time.Hour

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	units         = map[string]time.Duration{
		"h":      time.Hour,
		"hr":     time.Hour,
		"hrs":    time.Hour,
		"hour":   time.Hour,
		"hours":  time.Hour,
		"d":      day,
		"day":    day,
		"days":   day,
		"t":      day, // Tag
		"tag":    day,
		"tage":   day,
		"w":      7 * day,
		"wk":     7 * day,
		"week":   7 * day,
		"weeks":  7 * day,
		"woche":  7 * day,
		"wochen": 7 * day,
	}
)

// ParseWindow parses a human-friendly window such as "3d", "1w" or "2w3d"
// and returns the duration with its canonical label. An empty input means
// no window and yields zero without error.
func ParseWindow(input string) (time.Duration, string, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return 0, "", nil
	}

	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("timeutil: invalid window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("timeutil: invalid window value %q: %w", matches[1], err)
		}
		base, ok := units[matches[2]]
		if !ok {
			return 0, "", fmt.Errorf("timeutil: unsupported window unit %q", matches[2])
		}
		total += time.Duration(value) * base
		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("timeutil: window must be greater than zero")
	}
	return total, FormatWindow(total), nil
}

// Since returns the start of the window ending at now, truncated to local
// midnight for whole-day windows so "1d" means "since yesterday's start".
func Since(input string, now time.Time) (time.Time, error) {
	d, _, err := ParseWindow(input)
	if err != nil || d == 0 {
		return time.Time{}, err
	}
	start := now.Add(-d)
	if d%day == 0 {
		y, m, dd := start.Date()
		start = time.Date(y, m, dd, 0, 0, 0, 0, now.Location())
	}
	return start, nil
}

// FormatWindow renders a duration using week/day/hour tokens.
func FormatWindow(d time.Duration) string {
	if d <= 0 {
		return "0h"
	}
	steps := []struct {
		label string
		value time.Duration
	}{
		{"w", 7 * day},
		{"d", day},
		{"h", time.Hour},
	}

	var b strings.Builder
	remaining := d
	for _, u := range steps {
		if remaining < u.value {
			continue
		}
		count := remaining / u.value
		remaining -= count * u.value
		fmt.Fprintf(&b, "%d%s", count, u.label)
	}
	if b.Len() == 0 {
		return "0h"
	}
	return b.String()
}
