package generation

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/michaelwsd/lingualift/internal/domain"
	"github.com/michaelwsd/lingualift/internal/llm"
)

// maxPracticeWords caps how many saved words go into one practice prompt.
const maxPracticeWords = 30

// GenerateCollectionPassage writes a short practice passage that uses the
// saved words. The saved words become the passage vocabulary so they anchor
// like any other glossary entry. An empty collection is a no-op: it returns
// nil without calling the provider.
func (s *Service) GenerateCollectionPassage(ctx context.Context, words []domain.SavedWord) (*domain.Passage, error) {
	if len(words) == 0 {
		return nil, nil
	}
	if len(words) > maxPracticeWords {
		words = words[:maxPracticeWords]
	}

	texts := make([]string, 0, len(words))
	vocab := make([]domain.VocabularyWord, 0, len(words))
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		text := strings.TrimSpace(w.Text)
		key := domain.NormalizeText(text)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		texts = append(texts, text)
		vocab = append(vocab, domain.VocabularyWord{
			ID:              uuid.New(),
			Word:            text,
			Definition:      w.Definition,
			ExampleSentence: w.ExampleSentence,
		})
	}
	if len(texts) == 0 {
		return nil, nil
	}

	resp, err := s.limits.Call(ctx, s.gen, llm.Request{
		System: teacherPersona,
		Prompt: practicePrompt(texts),
	})
	if err != nil {
		return nil, domain.GenerationError("generate practice passage", err)
	}
	content := strings.TrimSpace(resp.Text)
	if content == "" {
		return nil, domain.GenerationError("generate practice passage", missingFields{"content"})
	}

	p := &domain.Passage{
		ID:             uuid.New(),
		Title:          practiceTitle,
		Content:        content,
		Vocabulary:     vocab,
		Questions:      []domain.Question{},
		WritingPrompt:  defaultWritingPrompt,
		SampleResponse: defaultSampleResponse,
		Theme:          practiceTheme,
		Type:           domain.LiteratureShortStory,
		CreatedAt:      time.Now().UTC(),
	}

	s.log.InfoContext(ctx, "practice passage generated",
		slog.String("passage_id", p.ID.String()),
		slog.Int("words", len(texts)),
	)
	return p, nil
}
