package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/michaelwsd/lingualift/internal/auth"
)

type loginGate interface {
	Login(ctx context.Context, username, password string) (*auth.Session, error)
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	gate loginGate
	log  *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(gate loginGate, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{gate: gate, log: logger.With("handler", "auth")}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string    `json:"accessToken"`
	UserID      string    `json:"userId"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Login handles POST /auth/login. Every successful login opens a new session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := h.gate.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken: sess.AccessToken,
		UserID:      sess.UserID.String(),
		ExpiresAt:   sess.ExpiresAt,
	})
}
