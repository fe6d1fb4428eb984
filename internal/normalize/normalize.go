// Package normalize canonicalizes free-form questionnaire input. Every
// function is pure: it returns a canonical value or a documented fallback,
// never an error. Callers decide what a fallback means for their field.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	titleCaser   = cases.Title(language.Spanish)
	accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// fold lower-cases and strips accents so "Miércoles", "MIERCOLES" and
// "miercoles" all compare equal.
func fold(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if out, _, err := transform.String(accentFolder, s); err == nil {
		return out
	}
	return s
}

func titleCase(s string) string {
	return titleCaser.String(strings.TrimSpace(s))
}
