package handler

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"dictionnaire/internal/domain"
)

// ErrExit signals that the user typed the exit command at a prompt
var ErrExit = errors.New("exit requested")

// byteOrderMark is sometimes left in front of piped input by Windows editors
const byteOrderMark = "\ufeff"

// cleanInput trims surrounding whitespace (including \r) and a leading byte order mark.
// Other characters are kept so validation can reject them.
func cleanInput(data string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(data), byteOrderMark))
}

// readLine returns the next input line; a last line without newline is kept
func (h *Handler) readLine() (string, error) {
	line, err := h.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

// readWord prompts until a valid word is typed and returns it capitalized.
// Returns ErrExit when the user types the exit command.
func (h *Handler) readWord(prompt string) (string, error) {
	for {
		h.println(prompt)

		line, err := h.readLine()
		if err != nil {
			return "", err
		}

		text := cleanInput(line)
		if text == exitCommand {
			return "", ErrExit
		}

		if domain.IsValidWord(text) {
			return domain.Capitalize(text), nil
		}

		h.println("L'entrée ne peut pas être vide et ne doit contenir que des lettres et des espaces.")
		h.println(fmt.Sprintf("Merci de réessayer ou entrez '%s' pour annuler.", exitCommand))
	}
}

// readLanguage prompts until a supported language is typed
func (h *Handler) readLanguage() (string, error) {
	prompt := fmt.Sprintf("Selectionnez la langue entre < %s > : ", h.languages)
	for {
		name, err := h.readWord(prompt)
		if err != nil {
			return "", err
		}

		if lang, ok := h.languages.Lookup(name); ok {
			return lang, nil
		}

		h.println("Langue non supportée. Veuillez réessayer.")
	}
}
