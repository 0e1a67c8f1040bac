package service

import (
	"testing"

	"dictionnaire/internal/domain"
	"dictionnaire/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestStatsService_CountPerLanguage(t *testing.T) {
	tests := []struct {
		name     string
		words    map[string]map[string]string
		expected []domain.LanguageCount
	}{
		{
			name: "equal counts sorted by name",
			words: map[string]map[string]string{
				"Hello":   {"Français": "Bonjour", "Arabe": "مرحبا"},
				"Goodbye": {"Français": "Au revoir", "Arabe": "إلى اللقاء"},
			},
			expected: []domain.LanguageCount{
				{Language: "Arabe", Count: 2},
				{Language: "Français", Count: 2},
			},
		},
		{
			name: "higher count first",
			words: map[string]map[string]string{
				"Hello": {"Français": "Bonjour", "Arabe": "مرحبا"},
				"Cat":   {"Français": "Chat"},
			},
			expected: []domain.LanguageCount{
				{Language: "Français", Count: 2},
				{Language: "Arabe", Count: 1},
			},
		},
		{
			name:     "empty vocabulary",
			words:    map[string]map[string]string{},
			expected: []domain.LanguageCount{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewStatsService(testutil.NewTestLogger())

			result := service.CountPerLanguage(testutil.NewTestVocabulary(tt.words))

			assert.Equal(t, tt.expected, result)
		})
	}
}
