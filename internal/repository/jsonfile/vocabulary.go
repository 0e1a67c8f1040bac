package jsonfile

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"dictionnaire/internal/domain"
)

// VocabularyRepo implements repository.VocabularyRepository on a JSON file
type VocabularyRepo struct {
	path string
}

// NewVocabularyRepo creates a repository backed by the file at path
func NewVocabularyRepo(path string) *VocabularyRepo {
	return &VocabularyRepo{path: path}
}

// Path returns the backing file path
func (r *VocabularyRepo) Path() string {
	return r.path
}

// Load reads the vocabulary document from disk.
// A missing file yields an error matching os.ErrNotExist.
func (r *VocabularyRepo) Load() (*domain.Vocabulary, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary file: %w", err)
	}
	defer f.Close()

	var v domain.Vocabulary
	if err := json.NewDecoder(bufio.NewReader(f)).Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode vocabulary file %s: %w", r.path, err)
	}

	if v.Words == nil {
		v.Words = make(map[string]map[string]string)
	}

	return &v, nil
}

// Save truncates the file and writes the full vocabulary
func (r *VocabularyRepo) Save(vocabulary *domain.Vocabulary) error {
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("failed to create vocabulary file: %w", err)
	}

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(vocabulary); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode vocabulary: %w", err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write vocabulary file: %w", err)
	}

	return f.Close()
}
