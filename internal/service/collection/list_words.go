package collection

import (
	"context"
	"fmt"

	"github.com/michaelwsd/lingualift/internal/domain"
)

// ListWords returns the user's saved words, most recent first. The result is
// never nil.
func (s *Service) ListWords(ctx context.Context) ([]domain.SavedWord, error) {
	ownerID, ok := s.owner(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	words, err := s.words.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list saved words: %w", err)
	}

	out := make([]domain.SavedWord, 0, len(words))
	for _, w := range words {
		if w != nil {
			out = append(out, *w)
		}
	}
	return out, nil
}
