package handler

import (
	"errors"
	"fmt"

	"dictionnaire/internal/service"

	"go.uber.org/zap"
)

// handleAddWord adds a new headword with one translation
func (h *Handler) handleAddWord() error {
	headword, err := h.readWord("Entrez le mot en anglais :")
	if err != nil {
		return err
	}

	if h.vocabService.FindWord(headword) {
		h.println("Le mot existe déjà dans le dictionnaire.")
		return nil
	}

	lang, err := h.readLanguage()
	if err != nil {
		return err
	}

	translation, err := h.readWord("Entrez la traduction :")
	if err != nil {
		return err
	}

	if err := h.vocabService.AddWord(headword, lang, translation); err != nil {
		if errors.Is(err, service.ErrWordExists) {
			h.println("Le mot existe déjà dans le dictionnaire.")
			return nil
		}
		h.logger.Error("Failed to add word", zap.Error(err), zap.String("word", headword))
		h.println("Échec de l'ajout du mot")
		return nil
	}

	h.println("Mot ajouté avec succès")
	return nil
}

// handleGetTranslation prints the translation of a headword
func (h *Handler) handleGetTranslation() error {
	headword, err := h.readWord("Entrez le mot en anglais :")
	if err != nil {
		return err
	}

	if !h.vocabService.FindWord(headword) {
		h.println("Le mot n'existe pas dans le dictionnaire.")
		return nil
	}

	lang, err := h.readLanguage()
	if err != nil {
		return err
	}

	if translation, ok := h.vocabService.GetTranslation(headword, lang); ok {
		h.println(fmt.Sprintf("Traduction : %s", translation))
	} else {
		h.println("Traduction non trouvée")
	}
	return nil
}

// handleUpdateTranslation replaces or adds a translation of a headword
func (h *Handler) handleUpdateTranslation() error {
	headword, err := h.readWord("Entrez le mot en anglais :")
	if err != nil {
		return err
	}

	if !h.vocabService.FindWord(headword) {
		h.println("Le mot n'existe pas dans le dictionnaire.")
		return nil
	}

	lang, err := h.readLanguage()
	if err != nil {
		return err
	}

	translation, err := h.readWord("Entrez la nouvelle traduction :")
	if err != nil {
		return err
	}

	if h.vocabService.UpdateTranslation(headword, lang, translation) {
		h.println("Traduction mise à jour avec succès")
	} else {
		h.println("Échec de la mise à jour de la traduction")
	}
	return nil
}

// handleCount prints the number of words per language
func (h *Handler) handleCount() {
	counts := h.statsService.CountPerLanguage(h.vocabService.Vocabulary())

	h.println("Nombre de mots par langue :")
	if len(counts) == 0 {
		h.println("  (aucun mot)")
		return
	}
	for _, c := range counts {
		h.println(fmt.Sprintf("  %s : %d", c.Language, c.Count))
	}
}

// handleShow prints the whole vocabulary
func (h *Handler) handleShow() {
	h.println("Vocabulaire complet :")
	fmt.Fprint(h.out, h.vocabService.Render())
}
