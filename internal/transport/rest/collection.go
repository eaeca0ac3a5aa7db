package rest

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/michaelwsd/lingualift/internal/domain"
	"github.com/michaelwsd/lingualift/internal/service/collection"
)

type collectionService interface {
	AddWord(ctx context.Context, input collection.AddWordInput) (*domain.SavedWord, error)
	ListWords(ctx context.Context) ([]domain.SavedWord, error)
	DeleteWord(ctx context.Context, input collection.DeleteWordInput) error
	PracticePassage(ctx context.Context) (*domain.Passage, error)
}

// CollectionHandler serves the saved-word collection.
type CollectionHandler struct {
	svc       collectionService
	workspace workspaceStore
	render    passageRenderer
	printer   printer
	log       *slog.Logger
}

// NewCollectionHandler creates a CollectionHandler.
func NewCollectionHandler(svc collectionService, workspace workspaceStore, render passageRenderer, printer printer, logger *slog.Logger) *CollectionHandler {
	return &CollectionHandler{
		svc:       svc,
		workspace: workspace,
		render:    render,
		printer:   printer,
		log:       logger.With("handler", "collection"),
	}
}

type addWordRequest struct {
	Text    string `json:"text"`
	Context string `json:"context"`
}

// List handles GET /api/collection.
func (h *CollectionHandler) List(w http.ResponseWriter, r *http.Request) {
	words, err := h.svc.ListWords(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	resp := make([]savedWordResponse, 0, len(words))
	for _, word := range words {
		resp = append(resp, toSavedWordResponse(word))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Add handles POST /api/collection.
func (h *CollectionHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addWordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	word, err := h.svc.AddWord(r.Context(), collection.AddWordInput{Text: req.Text, Context: req.Context})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSavedWordResponse(*word))
}

// Delete handles DELETE /api/collection/{id}.
func (h *CollectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("id", "invalid id"))
		return
	}
	if err := h.svc.DeleteWord(r.Context(), collection.DeleteWordInput{WordID: id}); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Practice handles POST /api/collection/practice-passage. An empty collection
// yields 204 and leaves the session's practice passage untouched. A result
// overtaken by a newer request is discarded with 409.
func (h *CollectionHandler) Practice(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	token := h.workspace.BeginPractice(sid)
	passage, err := h.svc.PracticePassage(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if passage == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if !h.workspace.CommitPractice(sid, token, passage) {
		h.log.InfoContext(r.Context(), "practice passage superseded, not stored",
			slog.String("passage_id", passage.ID.String()),
		)
		writeError(w, http.StatusConflict, "a newer practice passage was requested")
		return
	}

	html, err := h.render(passage)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPassageResponse(passage, html))
}

// Print handles GET /api/collection/print.
func (h *CollectionHandler) Print(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	words, err := h.svc.ListWords(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var buf bytes.Buffer
	if err := h.printer.Collection(&buf, words, h.workspace.Get(sid).Practice); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeHTML(w, buf.Bytes())
}
