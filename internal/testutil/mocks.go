package testutil

import (
	"dictionnaire/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockVocabularyRepository is a mock for VocabularyRepository
type MockVocabularyRepository struct {
	mock.Mock
}

func (m *MockVocabularyRepository) Load() (*domain.Vocabulary, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vocabulary), args.Error(1)
}

func (m *MockVocabularyRepository) Save(vocabulary *domain.Vocabulary) error {
	args := m.Called(vocabulary)
	return args.Error(0)
}
