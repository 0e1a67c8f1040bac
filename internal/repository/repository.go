package repository

import (
	"dictionnaire/internal/domain"
)

// VocabularyRepository persists the whole vocabulary as one snapshot
type VocabularyRepository interface {
	Load() (*domain.Vocabulary, error)
	Save(vocabulary *domain.Vocabulary) error
}
