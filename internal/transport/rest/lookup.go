package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/michaelwsd/lingualift/internal/domain"
	"github.com/michaelwsd/lingualift/internal/service/lookup"
)

type definitionService interface {
	Define(ctx context.Context, word string) string
	WordDetail(ctx context.Context, text, sentence string) domain.WordDetail
}

type popoverService interface {
	Open(ctx context.Context, sessionID uuid.UUID, word string) (lookup.Popover, error)
	Get(sessionID uuid.UUID) lookup.Popover
	Wait(ctx context.Context, sessionID uuid.UUID) (lookup.Popover, error)
	Close(sessionID uuid.UUID)
}

// LookupHandler serves definitions, word details and the session popover.
type LookupHandler struct {
	defs     definitionService
	popovers popoverService
	waitFor  time.Duration
	log      *slog.Logger
}

// NewLookupHandler creates a LookupHandler. waitFor bounds how long
// ?wait=true holds a popover request open.
func NewLookupHandler(defs definitionService, popovers popoverService, waitFor time.Duration, logger *slog.Logger) *LookupHandler {
	return &LookupHandler{
		defs:     defs,
		popovers: popovers,
		waitFor:  waitFor,
		log:      logger.With("handler", "lookup"),
	}
}

type definitionRequest struct {
	Word string `json:"word"`
}

type definitionResponse struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

type wordDetailRequest struct {
	Text    string `json:"text"`
	Context string `json:"context"`
}

// Definition handles POST /api/lookup/definition. Lookup failures come back
// as placeholder text, never as errors.
func (h *LookupHandler) Definition(w http.ResponseWriter, r *http.Request) {
	var req definitionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, definitionResponse{
		Word:       req.Word,
		Definition: h.defs.Define(r.Context(), req.Word),
	})
}

// WordDetail handles POST /api/lookup/word-detail.
func (h *LookupHandler) WordDetail(w http.ResponseWriter, r *http.Request) {
	var req wordDetailRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	d := h.defs.WordDetail(r.Context(), req.Text, req.Context)
	writeJSON(w, http.StatusOK, wordDetailResponse{
		Definition:      d.Definition,
		Synonym:         d.Synonym,
		ExampleSentence: d.ExampleSentence,
	})
}

// OpenPopover handles POST /api/lookup/popover. With ?wait=true the response
// is held until the lookup resolves or the wait time runs out; the popover
// is returned as it stands either way.
func (h *LookupHandler) OpenPopover(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req definitionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.popovers.Open(r.Context(), sid, req.Word)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if wait, _ := strconv.ParseBool(r.URL.Query().Get("wait")); wait {
		ctx, cancel := context.WithTimeout(r.Context(), h.waitFor)
		defer cancel()
		// Wait only fails on ctx; the popover is still loading then.
		p, _ = h.popovers.Wait(ctx, sid)
	}

	writeJSON(w, http.StatusOK, toPopoverResponse(p))
}

// GetPopover handles GET /api/lookup/popover.
func (h *LookupHandler) GetPopover(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toPopoverResponse(h.popovers.Get(sid)))
}

// ClosePopover handles DELETE /api/lookup/popover.
func (h *LookupHandler) ClosePopover(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	h.popovers.Close(sid)
	w.WriteHeader(http.StatusNoContent)
}
