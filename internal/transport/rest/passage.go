package rest

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/michaelwsd/lingualift/internal/adapter/memory"
	"github.com/michaelwsd/lingualift/internal/domain"
)

type passageGenerator interface {
	GeneratePassage(ctx context.Context, cfg domain.GenerationConfig) (*domain.Passage, error)
}

type workspaceStore interface {
	Get(sessionID uuid.UUID) memory.Workspace
	BeginPassage(sessionID uuid.UUID) uint64
	CommitPassage(sessionID uuid.UUID, token uint64, p *domain.Passage) bool
	SetWorksheet(sessionID, passageID uuid.UUID, w *domain.Worksheet) bool
	BeginPractice(sessionID uuid.UUID) uint64
	CommitPractice(sessionID uuid.UUID, token uint64, p *domain.Passage) bool
}

type passageRenderer func(p *domain.Passage) (string, error)

type printer interface {
	Passage(w io.Writer, passage *domain.Passage, mode domain.PrintMode) error
	Worksheet(w io.Writer, passage *domain.Passage, ws *domain.Worksheet, words []domain.SavedWord, mode domain.PrintMode) error
	Collection(w io.Writer, words []domain.SavedWord, practice *domain.Passage) error
}

// PassageHandler serves passage generation and printing.
type PassageHandler struct {
	gen       passageGenerator
	workspace workspaceStore
	render    passageRenderer
	printer   printer
	log       *slog.Logger
}

// NewPassageHandler creates a PassageHandler.
func NewPassageHandler(gen passageGenerator, workspace workspaceStore, render passageRenderer, printer printer, logger *slog.Logger) *PassageHandler {
	return &PassageHandler{
		gen:       gen,
		workspace: workspace,
		render:    render,
		printer:   printer,
		log:       logger.With("handler", "passage"),
	}
}

type generatePassageRequest struct {
	Theme          string `json:"theme"`
	CustomTopic    string `json:"customTopic"`
	LiteratureType string `json:"literatureType"`
	Difficulty     string `json:"difficulty"`
}

// Generate handles POST /api/passages. The new passage replaces the session's
// current passage and worksheet unless a newer request was made meanwhile;
// the superseded result is discarded with 409.
func (h *PassageHandler) Generate(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	var req generatePassageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cfg := domain.GenerationConfig{
		Theme:          domain.Theme(req.Theme),
		CustomTopic:    req.CustomTopic,
		LiteratureType: domain.LiteratureType(req.LiteratureType),
		Difficulty:     domain.Difficulty(req.Difficulty),
	}
	// Invalid submissions never count as the latest request.
	if err := cfg.Validate(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	token := h.workspace.BeginPassage(sid)
	passage, err := h.gen.GeneratePassage(r.Context(), cfg)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if !h.workspace.CommitPassage(sid, token, passage) {
		h.log.InfoContext(r.Context(), "passage superseded, not stored",
			slog.String("passage_id", passage.ID.String()),
		)
		writeError(w, http.StatusConflict, "a newer passage was requested")
		return
	}

	h.writePassage(w, r, http.StatusCreated, passage)
}

// Current handles GET /api/passages/current.
func (h *PassageHandler) Current(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	passage := h.workspace.Get(sid).Passage
	if passage == nil {
		handleError(w, r, h.log, domain.ErrNotFound)
		return
	}
	h.writePassage(w, r, http.StatusOK, passage)
}

// Print handles GET /api/passages/current/print?mode=student|teacher.
func (h *PassageHandler) Print(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	mode, err := printMode(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	passage := h.workspace.Get(sid).Passage
	if passage == nil {
		handleError(w, r, h.log, domain.ErrNotFound)
		return
	}

	var buf bytes.Buffer
	if err := h.printer.Passage(&buf, passage, mode); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeHTML(w, buf.Bytes())
}

func (h *PassageHandler) writePassage(w http.ResponseWriter, r *http.Request, status int, p *domain.Passage) {
	html, err := h.render(p)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, status, toPassageResponse(p, html))
}

// printMode reads ?mode, defaulting to the student view.
func printMode(r *http.Request) (domain.PrintMode, error) {
	raw := r.URL.Query().Get("mode")
	if raw == "" {
		return domain.PrintStudent, nil
	}
	mode := domain.PrintMode(raw)
	if !mode.IsValid() {
		return "", domain.NewValidationError("mode", "must be student or teacher")
	}
	return mode, nil
}
