package collection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/michaelwsd/lingualift/internal/domain"
)

// DeleteWord removes one saved word by ID.
func (s *Service) DeleteWord(ctx context.Context, input DeleteWordInput) error {
	ownerID, ok := s.owner(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.words.Delete(ctx, ownerID, input.WordID); err != nil {
		return fmt.Errorf("delete saved word: %w", err)
	}

	s.log.InfoContext(ctx, "word removed",
		slog.String("owner_id", ownerID.String()),
		slog.String("word_id", input.WordID.String()),
	)
	return nil
}
