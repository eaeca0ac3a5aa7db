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

type passagePayload struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Vocabulary []struct {
		Word            string `json:"word"`
		Definition      string `json:"definition"`
		ExampleSentence string `json:"exampleSentence"`
	} `json:"vocabulary"`
	Questions []struct {
		Question    string `json:"question"`
		Answer      string `json:"answer"`
		Explanation string `json:"explanation"`
	} `json:"questions"`
	WritingPrompt  string `json:"writingPrompt"`
	SampleResponse string `json:"sampleResponse"`
}

// GeneratePassage requests a passage for cfg. Every sub-entity gets a fresh
// id. Fails with domain.ErrGeneration when the response has no title,
// content, vocabulary or questions.
func (s *Service) GeneratePassage(ctx context.Context, cfg domain.GenerationConfig) (*domain.Passage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := s.limits.Call(ctx, s.gen, llm.Request{
		System: teacherPersona,
		Prompt: passagePrompt(cfg),
		Schema: passageSchema,
	})
	if err != nil {
		return nil, domain.GenerationError("generate passage", err)
	}

	var payload passagePayload
	if err := llm.Decode(resp.Text, &payload); err != nil {
		return nil, domain.GenerationError("generate passage", err)
	}

	p, err := normalizePassage(payload)
	if err != nil {
		return nil, err
	}
	p.Theme = cfg.ThemeLabel()
	p.Type = cfg.LiteratureType

	s.log.InfoContext(ctx, "passage generated",
		slog.String("passage_id", p.ID.String()),
		slog.String("theme", p.Theme),
		slog.String("type", p.Type.String()),
		slog.String("difficulty", cfg.Difficulty.String()),
		slog.Int("vocabulary", len(p.Vocabulary)),
		slog.Int("questions", len(p.Questions)),
		slog.Duration("duration", time.Since(start)),
	)
	return p, nil
}

// normalizePassage maps a decoded payload onto a Passage. Secondary fields
// fall back to fixed text; primary fields are required.
func normalizePassage(in passagePayload) (*domain.Passage, error) {
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)

	var missing []string
	if title == "" {
		missing = append(missing, "title")
	}
	if content == "" {
		missing = append(missing, "content")
	}
	if in.Vocabulary == nil {
		missing = append(missing, "vocabulary")
	}
	if in.Questions == nil {
		missing = append(missing, "questions")
	}
	if len(missing) > 0 {
		return nil, domain.GenerationError("normalize passage", missingFields(missing))
	}

	p := &domain.Passage{
		ID:             uuid.New(),
		Title:          title,
		Content:        content,
		Vocabulary:     make([]domain.VocabularyWord, 0, len(in.Vocabulary)),
		Questions:      make([]domain.Question, 0, len(in.Questions)),
		WritingPrompt:  orDefault(in.WritingPrompt, defaultWritingPrompt),
		SampleResponse: orDefault(in.SampleResponse, defaultSampleResponse),
		CreatedAt:      time.Now().UTC(),
	}
	for _, v := range in.Vocabulary {
		word := strings.TrimSpace(v.Word)
		if word == "" {
			continue
		}
		p.Vocabulary = append(p.Vocabulary, domain.VocabularyWord{
			ID:              uuid.New(),
			Word:            word,
			Definition:      strings.TrimSpace(v.Definition),
			ExampleSentence: strings.TrimSpace(v.ExampleSentence),
		})
	}
	for _, q := range in.Questions {
		text := strings.TrimSpace(q.Question)
		if text == "" {
			continue
		}
		p.Questions = append(p.Questions, domain.Question{
			ID:          uuid.New(),
			Question:    text,
			Answer:      strings.TrimSpace(q.Answer),
			Explanation: strings.TrimSpace(q.Explanation),
		})
	}
	return p, nil
}

type missingFields []string

func (m missingFields) Error() string {
	return "missing " + strings.Join(m, ", ")
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}
