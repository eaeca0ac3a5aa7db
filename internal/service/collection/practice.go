package collection

import (
	"context"

	"github.com/michaelwsd/lingualift/internal/domain"
)

// PracticePassage writes a practice passage from the user's collection. An
// empty collection returns nil without contacting the provider.
func (s *Service) PracticePassage(ctx context.Context) (*domain.Passage, error) {
	words, err := s.ListWords(ctx)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, nil
	}
	return s.writer.GenerateCollectionPassage(ctx, words)
}
