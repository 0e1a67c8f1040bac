package service

import (
	"errors"
	"fmt"

	"dictionnaire/internal/domain"
	"dictionnaire/internal/repository"

	"go.uber.org/zap"
)

// ErrWordExists is returned when adding a headword that is already stored
var ErrWordExists = errors.New("word already exists")

// VocabularyService owns the session's vocabulary and its persistence
type VocabularyService struct {
	repo       repository.VocabularyRepository
	logger     *zap.Logger
	vocabulary *domain.Vocabulary
}

// NewVocabularyService creates a service with an empty vocabulary
func NewVocabularyService(repo repository.VocabularyRepository, logger *zap.Logger) *VocabularyService {
	return &VocabularyService{
		repo:       repo,
		logger:     logger,
		vocabulary: domain.NewVocabulary(),
	}
}

// Open loads the persisted vocabulary, falling back to an empty one.
// It reports whether a previous dictionary was found.
func (s *VocabularyService) Open() bool {
	v, err := s.repo.Load()
	if err != nil {
		s.logger.Warn("No vocabulary loaded, starting empty", zap.Error(err))
		s.vocabulary = domain.NewVocabulary()
		return false
	}

	s.logger.Info("Vocabulary loaded", zap.Int("words", v.Len()))
	s.vocabulary = v
	return true
}

// Save persists the whole vocabulary
func (s *VocabularyService) Save() error {
	if err := s.repo.Save(s.vocabulary); err != nil {
		s.logger.Error("Failed to save vocabulary", zap.Error(err))
		return fmt.Errorf("failed to save vocabulary: %w", err)
	}

	s.logger.Info("Vocabulary saved", zap.Int("words", s.vocabulary.Len()))
	return nil
}

// AddWord stores a new headword with a single translation
func (s *VocabularyService) AddWord(headword, lang, translation string) error {
	if headword == "" || translation == "" {
		return fmt.Errorf("word and translation cannot be empty")
	}
	if s.vocabulary.FindWord(headword) {
		return ErrWordExists
	}

	s.vocabulary.AddWord(headword, map[string]string{lang: translation})

	s.logger.Debug("Word added",
		zap.String("word", headword),
		zap.String("language", lang),
	)
	return nil
}

// GetTranslation returns the translation of headword into lang
func (s *VocabularyService) GetTranslation(headword, lang string) (string, bool) {
	return s.vocabulary.GetTranslation(headword, lang)
}

// UpdateTranslation sets the translation of an existing headword
func (s *VocabularyService) UpdateTranslation(headword, lang, translation string) bool {
	updated := s.vocabulary.UpdateTranslation(headword, lang, translation)

	s.logger.Debug("Translation update",
		zap.String("word", headword),
		zap.String("language", lang),
		zap.Bool("updated", updated),
	)
	return updated
}

// FindWord checks if headword is stored
func (s *VocabularyService) FindWord(headword string) bool {
	return s.vocabulary.FindWord(headword)
}

// Render returns the printable vocabulary
func (s *VocabularyService) Render() string {
	return s.vocabulary.String()
}

// Vocabulary returns the vocabulary owned by the service
func (s *VocabularyService) Vocabulary() *domain.Vocabulary {
	return s.vocabulary
}
