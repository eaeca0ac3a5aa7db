package collection

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/michaelwsd/lingualift/internal/domain"
)

// AddWord saves the selected text with generated metadata. The metadata
// lookup never fails; it degrades to placeholder text.
func (s *Service) AddWord(ctx context.Context, input AddWordInput) (*domain.SavedWord, error) {
	ownerID, ok := s.owner(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(input.Text)
	detail := s.detail.WordDetail(ctx, text, strings.TrimSpace(input.Context))

	var saved *domain.SavedWord
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		count, err := s.words.Count(txCtx, ownerID)
		if err != nil {
			return fmt.Errorf("count saved words: %w", err)
		}
		if count >= s.maxWords {
			return domain.NewValidationError("collection", fmt.Sprintf("collection is full (max %d words)", s.maxWords))
		}

		saved, err = s.words.Create(txCtx, ownerID, &domain.SavedWord{
			ID:              uuid.New(),
			Text:            text,
			Definition:      detail.Definition,
			Synonym:         detail.Synonym,
			ExampleSentence: detail.ExampleSentence,
			CreatedAt:       time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create saved word: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "word saved",
		slog.String("owner_id", ownerID.String()),
		slog.String("word_id", saved.ID.String()),
		slog.String("text", preview(text, 50)),
	)

	return saved, nil
}

// preview shortens s to at most n runes.
func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
