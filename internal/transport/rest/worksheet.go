package rest

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	"github.com/michaelwsd/lingualift/internal/domain"
)

type worksheetGenerator interface {
	Generate(ctx context.Context, passage *domain.Passage, words []domain.SavedWord) (*domain.Worksheet, error)
}

type wordLister interface {
	ListWords(ctx context.Context) ([]domain.SavedWord, error)
}

// WorksheetHandler serves worksheet generation and printing.
type WorksheetHandler struct {
	gen       worksheetGenerator
	words     wordLister
	workspace workspaceStore
	printer   printer
	log       *slog.Logger
}

// NewWorksheetHandler creates a WorksheetHandler.
func NewWorksheetHandler(gen worksheetGenerator, words wordLister, workspace workspaceStore, printer printer, logger *slog.Logger) *WorksheetHandler {
	return &WorksheetHandler{
		gen:       gen,
		words:     words,
		workspace: workspace,
		printer:   printer,
		log:       logger.With("handler", "worksheet"),
	}
}

// Generate handles POST /api/worksheets. The worksheet is built from the
// session's current passage and the user's collection.
func (h *WorksheetHandler) Generate(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	passage := h.workspace.Get(sid).Passage
	if passage == nil {
		handleError(w, r, h.log, domain.ErrNotFound)
		return
	}
	words, err := h.words.ListWords(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	ws, err := h.gen.Generate(r.Context(), passage, words)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if !h.workspace.SetWorksheet(sid, passage.ID, ws) {
		// The passage changed while the worksheet was generated.
		h.log.InfoContext(r.Context(), "worksheet outdated, not stored",
			slog.String("passage_id", passage.ID.String()),
		)
		writeError(w, http.StatusConflict, "passage changed while the worksheet was generated")
		return
	}

	writeJSON(w, http.StatusCreated, toWorksheetResponse(ws))
}

// Print handles GET /api/worksheets/current/print?mode=student|teacher.
func (h *WorksheetHandler) Print(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	mode, err := printMode(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	current := h.workspace.Get(sid)
	if current.Passage == nil || current.Worksheet == nil {
		handleError(w, r, h.log, domain.ErrNotFound)
		return
	}
	words, err := h.words.ListWords(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var buf bytes.Buffer
	if err := h.printer.Worksheet(&buf, current.Passage, current.Worksheet, words, mode); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeHTML(w, buf.Bytes())
}
