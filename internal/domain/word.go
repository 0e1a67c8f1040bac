package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// IsValidWord reports whether s is non-blank and made only of letters and spaces.
// Combining marks (Arabic harakat, decomposed accents) count as part of a letter.
func IsValidWord(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	for _, r := range norm.NFC.String(s) {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) && !unicode.In(r, unicode.Mn, unicode.Mc) {
			return false
		}
	}
	return true
}

// Capitalize lowercases s and uppercases its first letter ("hELLO" -> "Hello").
// The result is NFC so composed and decomposed input map to the same key.
func Capitalize(s string) string {
	lower := cases.Lower(language.Und).String(norm.NFC.String(s))
	_, size := utf8.DecodeRuneInString(lower)
	if size == 0 {
		return ""
	}
	return cases.Upper(language.Und).String(lower[:size]) + lower[size:]
}
