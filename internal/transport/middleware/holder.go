package middleware

import (
	"context"
	"net/http"
)

type holderKey struct{}

// requestHolder lets inner middleware publish the request they enriched so
// outer middleware can read identifiers added after them.
type requestHolder struct {
	req *http.Request
}

func withHolder(ctx context.Context, h *requestHolder) context.Context {
	return context.WithValue(ctx, holderKey{}, h)
}

// publish records r in the holder installed by Logger, if any.
func publish(r *http.Request) {
	if h, ok := r.Context().Value(holderKey{}).(*requestHolder); ok {
		h.req = r
	}
}
