package rest

import (
	"net/http"

	"github.com/michaelwsd/lingualift/internal/transport/middleware"
)

// Handlers groups every REST handler served by the router.
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	Passage    *PassageHandler
	Lookup     *LookupHandler
	Collection *CollectionHandler
	Worksheet  *WorksheetHandler
}

// NewRouter registers all routes. Everything under /api/ requires an
// authenticated session.
func NewRouter(h Handlers) *http.ServeMux {
	api := http.NewServeMux()
	api.HandleFunc("POST /api/passages", h.Passage.Generate)
	api.HandleFunc("GET /api/passages/current", h.Passage.Current)
	api.HandleFunc("GET /api/passages/current/print", h.Passage.Print)

	api.HandleFunc("POST /api/lookup/definition", h.Lookup.Definition)
	api.HandleFunc("POST /api/lookup/word-detail", h.Lookup.WordDetail)
	api.HandleFunc("POST /api/lookup/popover", h.Lookup.OpenPopover)
	api.HandleFunc("GET /api/lookup/popover", h.Lookup.GetPopover)
	api.HandleFunc("DELETE /api/lookup/popover", h.Lookup.ClosePopover)

	api.HandleFunc("GET /api/collection", h.Collection.List)
	api.HandleFunc("POST /api/collection", h.Collection.Add)
	api.HandleFunc("DELETE /api/collection/{id}", h.Collection.Delete)
	api.HandleFunc("POST /api/collection/practice-passage", h.Collection.Practice)
	api.HandleFunc("GET /api/collection/print", h.Collection.Print)

	api.HandleFunc("POST /api/worksheets", h.Worksheet.Generate)
	api.HandleFunc("GET /api/worksheets/current/print", h.Worksheet.Print)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.Handle("/api/", middleware.RequireAuth(api))
	return mux
}
