package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/michaelwsd/lingualift/pkg/ctxutil"
)

// maxRequestIDLen caps client-supplied request ids.
const maxRequestIDLen = 128

// RequestID propagates X-Request-Id, minting one when absent or oversized.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}
