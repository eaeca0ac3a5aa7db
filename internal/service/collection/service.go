// Package collection manages a user's saved words.
package collection

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/michaelwsd/lingualift/internal/domain"
	"github.com/michaelwsd/lingualift/pkg/ctxutil"
)

// DefaultMaxWords caps a collection when no limit is configured.
const DefaultMaxWords = 500

// Scope selects who owns a collection.
type Scope int

const (
	// ScopeUser keeps one collection per user across logins.
	ScopeUser Scope = iota
	// ScopeSession starts every login with an empty collection.
	ScopeSession
)

type wordRepo interface {
	Create(ctx context.Context, userID uuid.UUID, word *domain.SavedWord) (*domain.SavedWord, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.SavedWord, error)
	Delete(ctx context.Context, userID, wordID uuid.UUID) error
	Count(ctx context.Context, userID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type detailer interface {
	WordDetail(ctx context.Context, text, sentence string) domain.WordDetail
}

type passageWriter interface {
	GenerateCollectionPassage(ctx context.Context, words []domain.SavedWord) (*domain.Passage, error)
}

// Service provides collection operations.
type Service struct {
	words    wordRepo
	tx       txManager
	detail   detailer
	writer   passageWriter
	maxWords int
	scope    Scope
	log      *slog.Logger
}

// NewService creates a collection service. A non-positive maxWords means
// DefaultMaxWords.
func NewService(
	log *slog.Logger,
	words wordRepo,
	tx txManager,
	detail detailer,
	writer passageWriter,
	maxWords int,
	scope Scope,
) *Service {
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}
	return &Service{
		words:    words,
		tx:       tx,
		detail:   detail,
		writer:   writer,
		maxWords: maxWords,
		scope:    scope,
		log:      log.With("service", "collection"),
	}
}

// owner returns the id the collection is stored under.
func (s *Service) owner(ctx context.Context) (uuid.UUID, bool) {
	if s.scope == ScopeSession {
		return ctxutil.SessionIDFromCtx(ctx)
	}
	return ctxutil.UserIDFromCtx(ctx)
}
