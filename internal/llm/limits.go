package llm

import (
	"context"
	"time"
)

// Limits holds per-call defaults applied by Call.
type Limits struct {
	MaxTokens   int
	Temperature float32
	// Timeout bounds a single provider call. Zero leaves ctx as is.
	Timeout time.Duration
}

// Call fills unset request limits and sends req to p.
func (l Limits) Call(ctx context.Context, p Provider, req Request) (*Response, error) {
	if req.MaxTokens == 0 {
		req.MaxTokens = l.MaxTokens
	}
	if req.Temperature == nil && l.Temperature > 0 {
		t := l.Temperature
		req.Temperature = &t
	}
	if l.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.Timeout)
		defer cancel()
	}
	return p.Generate(ctx, req)
}
