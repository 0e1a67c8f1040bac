package handler

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"dictionnaire/internal/domain"
	"dictionnaire/internal/service"

	"go.uber.org/zap"
)

// Menu choices
const (
	choiceAdd    = 1
	choiceGet    = 2
	choiceUpdate = 3
	choiceCount  = 4
	choiceShow   = 5
	choiceQuit   = 6
)

// exitCommand typed at any prompt saves and quits
const exitCommand = "6"

const separator = "--------------------------------"

// Handler runs the interactive dictionary session on a console
type Handler struct {
	in           *bufio.Reader
	out          io.Writer
	vocabService *service.VocabularyService
	statsService *service.StatsService
	languages    domain.Languages
	logger       *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	in io.Reader,
	out io.Writer,
	vocabService *service.VocabularyService,
	statsService *service.StatsService,
	languages domain.Languages,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		in:           bufio.NewReader(in),
		out:          out,
		vocabService: vocabService,
		statsService: statsService,
		languages:    languages,
		logger:       logger,
	}
}

// Run loads the dictionary, serves menu commands until the user quits
// or input ends, then saves. Only unexpected read failures are returned.
func (h *Handler) Run() error {
	if !h.vocabService.Open() {
		h.println("Aucun fichier de vocabulaire trouvé. Création d'un nouveau dictionnaire.")
	}

	h.printWelcome()

	for {
		h.printMenu()

		line, err := h.readLine()
		if err != nil {
			return h.finish(err)
		}

		choice, err := strconv.ParseUint(cleanInput(line), 10, 32)
		if err != nil {
			h.println("Veuillez entrer un nombre valide.")
			continue
		}

		if err := h.dispatch(choice); err != nil {
			return h.finish(err)
		}
	}
}

func (h *Handler) dispatch(choice uint64) error {
	switch choice {
	case choiceAdd:
		return h.handleAddWord()
	case choiceGet:
		return h.handleGetTranslation()
	case choiceUpdate:
		return h.handleUpdateTranslation()
	case choiceCount:
		h.handleCount()
	case choiceShow:
		h.handleShow()
	case choiceQuit:
		return ErrExit
	default:
		h.println("Choix invalide")
	}
	return nil
}

// finish saves the dictionary; err is the reason the session ended
func (h *Handler) finish(err error) error {
	h.quit()

	if errors.Is(err, ErrExit) || errors.Is(err, io.EOF) {
		return nil
	}

	h.logger.Error("Failed to read input", zap.Error(err))
	return fmt.Errorf("failed to read input: %w", err)
}

func (h *Handler) quit() {
	h.println("Sauvegarde du dictionnaire...")
	if err := h.vocabService.Save(); err != nil {
		h.println(fmt.Sprintf("Erreur lors de la sauvegarde : %v", err))
	} else {
		h.println("Dictionnaire sauvegardé avec succès.")
	}
	h.println("Merci d'avoir utilisé le dictionnaire !")
}

func (h *Handler) printWelcome() {
	h.println(separator)
	h.println("Bienvenue dans le dictionnaire !")
	h.println(separator)
	h.println(fmt.Sprintf("Remarque : vous pouvez quitter le programme en entrant '%s' à n'importe quel moment.", exitCommand))
	h.println(separator)
	h.println("Commandes :")
	h.println(separator)
}

func (h *Handler) printMenu() {
	h.println("1 : Ajouter un mot dans le dictionnaire")
	h.println("----------------")
	h.println("2 : Obtenir une traduction")
	h.println("----------------")
	h.println("3 : Mettre à jour une traduction")
	h.println("----------------")
	h.println("4 : Compter les mots par langue")
	h.println("----------------")
	h.println("5 : Afficher tout le vocabulaire")
	h.println("----------------")
	h.println("6 : Quitter")
}

func (h *Handler) println(msg string) {
	fmt.Fprintln(h.out, msg)
}
