package entry

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "de-DE"

var (
	supported = []language.Tag{language.German, language.English}
	matcher   = language.NewMatcher(supported)
)

var germanWeekdays = [...]string{
	"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag",
}

var germanMonths = [...]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// ResolveLocale maps a user supplied locale such as "de-AT" or "en_US" onto
// one of the supported display languages. Unknown values fall back to German.
func ResolveLocale(locale string) language.Tag {
	tag, _ := language.MatchStrings(matcher, locale)
	base, _ := tag.Base()
	for _, s := range supported {
		if b, _ := s.Base(); b == base {
			return s
		}
	}
	return language.German
}

// FormatDate renders t as a long weekday date, e.g. "Mittwoch, 14. Oktober 2026"
// for German or "Wednesday, October 14, 2026" for English.
func FormatDate(t time.Time, locale string) string {
	t = t.Local()
	if ResolveLocale(locale) == language.English {
		return t.Format("Monday, January 2, 2006")
	}
	return fmt.Sprintf("%s, %d. %s %d",
		germanWeekdays[t.Weekday()], t.Day(), germanMonths[t.Month()-1], t.Year())
}
