// Package generation builds passages, practice passages and on-demand
// word lookups from a generative provider.
package generation

import (
	"context"
	"log/slog"

	"github.com/michaelwsd/lingualift/internal/llm"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type textGenerator interface {
	Generate(ctx context.Context, req llm.Request) (*llm.Response, error)
}

type dictionary interface {
	Define(ctx context.Context, word string) (string, error)
}

type definitionCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Service generates learning material.
type Service struct {
	gen    textGenerator
	dict   dictionary
	cache  definitionCache
	limits llm.Limits
	log    *slog.Logger
}

// NewService creates a generation service. dict and cache may be nil.
func NewService(
	log *slog.Logger,
	gen textGenerator,
	dict dictionary,
	cache definitionCache,
	limits llm.Limits,
) *Service {
	return &Service{
		gen:    gen,
		dict:   dict,
		cache:  cache,
		limits: limits,
		log:    log.With("service", "generation"),
	}
}
