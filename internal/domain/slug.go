package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var slugCaser = cases.Lower(language.Und)

// Slugify derives a realm slug from its display name the way the armory
// does: lower-cased, diacritics stripped, apostrophes, hyphens and other
// punctuation dropped, runs of whitespace joined with a single '-'.
// "Aggra (Português)" becomes "aggra-portugues".
func Slugify(name string) string {
	folded := slugCaser.String(stripMarks(strings.TrimSpace(name)))

	var b strings.Builder
	pendingDash := false
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		case unicode.IsSpace(r):
			pendingDash = true
		}
	}
	return b.String()
}

// stripMarks decomposes s and drops combining marks.
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
