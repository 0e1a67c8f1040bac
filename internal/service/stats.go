package service

import (
	"sort"

	"dictionnaire/internal/domain"

	"go.uber.org/zap"
)

// StatsService computes vocabulary statistics
type StatsService struct {
	logger *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(logger *zap.Logger) *StatsService {
	return &StatsService{logger: logger}
}

// CountPerLanguage returns word counts ordered by count, then language
func (s *StatsService) CountPerLanguage(v *domain.Vocabulary) []domain.LanguageCount {
	counts := v.CountWordsPerLanguage()

	result := make([]domain.LanguageCount, 0, len(counts))
	for lang, count := range counts {
		result = append(result, domain.LanguageCount{Language: lang, Count: count})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Language < result[j].Language
	})

	s.logger.Debug("Counted words per language", zap.Int("languages", len(result)))
	return result
}
