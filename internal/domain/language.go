package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultLanguages are the languages offered when none are configured
var DefaultLanguages = []string{"Français", "Arabe"}

// Languages is the closed set of supported translation languages
type Languages struct {
	names []string
}

// NewLanguages builds a language set, skipping blanks and duplicates.
// Names are capitalized like typed input so "ARABE" is matched by "arabe".
func NewLanguages(names ...string) Languages {
	seen := make(map[string]bool, len(names))
	var langs Languages
	for _, name := range names {
		name = Capitalize(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		langs.names = append(langs.names, name)
	}
	return langs
}

// Lookup returns the configured spelling of name.
// Matching is case-sensitive; composed and decomposed accents compare equal.
func (l Languages) Lookup(name string) (string, bool) {
	name = norm.NFC.String(name)
	for _, n := range l.names {
		if n == name {
			return n, true
		}
	}
	return "", false
}

// Supports checks if name is one of the configured languages
func (l Languages) Supports(name string) bool {
	_, ok := l.Lookup(name)
	return ok
}

// Names returns the languages in configured order
func (l Languages) Names() []string {
	return append([]string(nil), l.names...)
}

// String joins the names for prompts
func (l Languages) String() string {
	return strings.Join(l.names, ", ")
}
