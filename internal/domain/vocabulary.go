package domain

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Vocabulary maps an English headword to its translations keyed by language name
type Vocabulary struct {
	Words map[string]map[string]string `json:"words"`
}

// LanguageCount is the number of headwords translated into a language
type LanguageCount struct {
	Language string
	Count    int
}

// NewVocabulary creates an empty vocabulary
func NewVocabulary() *Vocabulary {
	return &Vocabulary{Words: make(map[string]map[string]string)}
}

// AddWord inserts or overwrites the entry for headword
func (v *Vocabulary) AddWord(headword string, translations map[string]string) {
	if v.Words == nil {
		v.Words = make(map[string]map[string]string)
	}
	if translations == nil {
		translations = make(map[string]string)
	}
	v.Words[headword] = translations
}

// GetTranslation returns the translation of headword into lang
func (v *Vocabulary) GetTranslation(headword, lang string) (string, bool) {
	translations, ok := v.Words[headword]
	if !ok {
		return "", false
	}
	translation, ok := translations[lang]
	return translation, ok
}

// UpdateTranslation sets the translation for an existing headword.
// It reports false and changes nothing when the headword is unknown.
func (v *Vocabulary) UpdateTranslation(headword, lang, translation string) bool {
	translations, ok := v.Words[headword]
	if !ok {
		return false
	}
	if translations == nil {
		translations = make(map[string]string)
		v.Words[headword] = translations
	}
	translations[lang] = translation
	return true
}

// CountWordsPerLanguage counts how many headwords carry each language
func (v *Vocabulary) CountWordsPerLanguage() map[string]int {
	counts := make(map[string]int)
	for _, translations := range v.Words {
		for lang := range translations {
			counts[lang]++
		}
	}
	return counts
}

// FindWord checks if headword is in the vocabulary
func (v *Vocabulary) FindWord(headword string) bool {
	_, ok := v.Words[headword]
	return ok
}

// Len returns the number of headwords
func (v *Vocabulary) Len() int {
	return len(v.Words)
}

// String renders one line per headword: "Hello: Arabe: مرحبا, Français: Bonjour".
// Headwords and languages are collated so the output is stable.
func (v *Vocabulary) String() string {
	col := collate.New(language.Und)

	headwords := make([]string, 0, len(v.Words))
	for headword := range v.Words {
		headwords = append(headwords, headword)
	}
	col.SortStrings(headwords)

	var b strings.Builder
	for _, headword := range headwords {
		translations := v.Words[headword]

		langs := make([]string, 0, len(translations))
		for lang := range translations {
			langs = append(langs, lang)
		}
		col.SortStrings(langs)

		b.WriteString(headword)
		b.WriteString(": ")
		for i, lang := range langs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(lang)
			b.WriteString(": ")
			b.WriteString(translations[lang])
		}
		b.WriteString("\n")
	}
	return b.String()
}
