package testutil

import (
	"dictionnaire/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestVocabulary creates a vocabulary holding a copy of words
func NewTestVocabulary(words map[string]map[string]string) *domain.Vocabulary {
	v := domain.NewVocabulary()
	for headword, translations := range words {
		copied := make(map[string]string, len(translations))
		for lang, translation := range translations {
			copied[lang] = translation
		}
		v.AddWord(headword, copied)
	}
	return v
}

// NewTestLanguages returns the default language set
func NewTestLanguages() domain.Languages {
	return domain.NewLanguages(domain.DefaultLanguages...)
}
