package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/michaelwsd/lingualift/internal/domain"
	"github.com/michaelwsd/lingualift/internal/llm"
)

const (
	definitionMaxTokens = 256
	detailMaxTokens     = 512
)

// Define returns a short definition of word. It never fails: the cache is
// consulted first, then the provider, then the dictionary, and a placeholder
// is returned when all of them come up empty.
func (s *Service) Define(ctx context.Context, word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return definitionNotFound
	}
	key := domain.NormalizeText(word)

	if def, ok := s.cachedDefinition(ctx, key); ok {
		return def
	}

	def, err := s.defineWithProvider(ctx, word)
	if err != nil {
		s.log.WarnContext(ctx, "provider definition failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
	}
	if def == "" {
		var dictErr error
		def, dictErr = s.defineWithDictionary(ctx, word)
		err = errors.Join(err, dictErr)
	}

	if def == "" {
		if err != nil {
			s.log.WarnContext(ctx, "definition lookup failed",
				slog.String("word", word),
				slog.String("error", fmt.Errorf("%w: %w", domain.ErrLookup, err).Error()),
			)
			return definitionFailed
		}
		return definitionNotFound
	}

	s.storeDefinition(ctx, key, def)
	return def
}

func (s *Service) defineWithProvider(ctx context.Context, word string) (string, error) {
	resp, err := s.limits.Call(ctx, s.gen, llm.Request{
		Prompt:    definitionPrompt(word),
		MaxTokens: definitionMaxTokens,
	})
	if errors.Is(err, llm.ErrNoText) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text), nil
}

func (s *Service) defineWithDictionary(ctx context.Context, word string) (string, error) {
	if s.dict == nil {
		return "", nil
	}
	def, err := s.dict.Define(ctx, word)
	if err != nil {
		return "", fmt.Errorf("dictionary: %w", err)
	}
	return strings.TrimSpace(def), nil
}

func (s *Service) cachedDefinition(ctx context.Context, key string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	def, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.WarnContext(ctx, "definition cache read failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return "", false
	}
	return def, ok && def != ""
}

func (s *Service) storeDefinition(ctx context.Context, key, def string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, def); err != nil {
		s.log.WarnContext(ctx, "definition cache write failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

type wordDetailPayload struct {
	Definition      string `json:"definition"`
	Synonym         string `json:"synonym"`
	ExampleSentence string `json:"exampleSentence"`
}

// WordDetail describes a selected span, using the surrounding sentence to
// pick the right sense. It never fails; on error the definition falls back
// to the dictionary or a placeholder.
func (s *Service) WordDetail(ctx context.Context, text, sentence string) domain.WordDetail {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.WordDetail{Definition: definitionNotFound}
	}

	resp, err := s.limits.Call(ctx, s.gen, llm.Request{
		Prompt:    wordDetailPrompt(text, strings.TrimSpace(sentence)),
		Schema:    wordDetailSchema,
		MaxTokens: detailMaxTokens,
	})
	var payload wordDetailPayload
	if err == nil {
		err = llm.Decode(resp.Text, &payload)
	}
	if err == nil && strings.TrimSpace(payload.Definition) == "" {
		err = errors.New("empty definition")
	}
	if err == nil {
		return domain.WordDetail{
			Definition:      strings.TrimSpace(payload.Definition),
			Synonym:         strings.TrimSpace(payload.Synonym),
			ExampleSentence: strings.TrimSpace(payload.ExampleSentence),
		}
	}

	s.log.WarnContext(ctx, "word detail failed",
		slog.String("text", text),
		slog.String("error", fmt.Errorf("%w: %w", domain.ErrLookup, err).Error()),
	)

	def, dictErr := s.defineWithDictionary(ctx, text)
	if dictErr != nil || def == "" {
		def = definitionFailed
	}
	return domain.WordDetail{Definition: def}
}
