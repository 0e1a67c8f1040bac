package postgres

import (
	"database/sql"
	"fmt"
	"sort"

	"dictionnaire/internal/domain"
)

// VocabularyRepo implements repository.VocabularyRepository on PostgreSQL
type VocabularyRepo struct {
	db *sql.DB
}

// NewVocabularyRepo creates a new vocabulary repository
func NewVocabularyRepo(db *sql.DB) *VocabularyRepo {
	return &VocabularyRepo{db: db}
}

// Load reads every headword and its translations
func (r *VocabularyRepo) Load() (*domain.Vocabulary, error) {
	v := domain.NewVocabulary()

	rows, err := r.db.Query(`SELECT headword FROM headwords`)
	if err != nil {
		return nil, fmt.Errorf("failed to query headwords: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var headword string
		if err := rows.Scan(&headword); err != nil {
			return nil, fmt.Errorf("failed to scan headword: %w", err)
		}
		v.AddWord(headword, make(map[string]string))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	trows, err := r.db.Query(`SELECT headword, language, translation FROM translations`)
	if err != nil {
		return nil, fmt.Errorf("failed to query translations: %w", err)
	}
	defer trows.Close()

	for trows.Next() {
		var headword, lang, translation string
		if err := trows.Scan(&headword, &lang, &translation); err != nil {
			return nil, fmt.Errorf("failed to scan translation: %w", err)
		}
		if !v.UpdateTranslation(headword, lang, translation) {
			v.AddWord(headword, map[string]string{lang: translation})
		}
	}

	return v, trows.Err()
}

// Save replaces the stored snapshot with vocabulary in one transaction
func (r *VocabularyRepo) Save(vocabulary *domain.Vocabulary) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := replaceSnapshot(tx, vocabulary); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit vocabulary: %w", err)
	}
	return nil
}

func replaceSnapshot(tx *sql.Tx, vocabulary *domain.Vocabulary) error {
	if _, err := tx.Exec(`DELETE FROM translations`); err != nil {
		return fmt.Errorf("failed to clear translations: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM headwords`); err != nil {
		return fmt.Errorf("failed to clear headwords: %w", err)
	}

	// Sorted so statements run in a stable order
	headwords := make([]string, 0, len(vocabulary.Words))
	for headword := range vocabulary.Words {
		headwords = append(headwords, headword)
	}
	sort.Strings(headwords)

	for _, headword := range headwords {
		if _, err := tx.Exec(`INSERT INTO headwords (headword) VALUES ($1)`, headword); err != nil {
			return fmt.Errorf("failed to insert headword %q: %w", headword, err)
		}

		translations := vocabulary.Words[headword]
		langs := make([]string, 0, len(translations))
		for lang := range translations {
			langs = append(langs, lang)
		}
		sort.Strings(langs)

		for _, lang := range langs {
			query := `
				INSERT INTO translations (headword, language, translation)
				VALUES ($1, $2, $3)
			`
			if _, err := tx.Exec(query, headword, lang, translations[lang]); err != nil {
				return fmt.Errorf("failed to insert translation %q/%q: %w", headword, lang, err)
			}
		}
	}

	return nil
}
