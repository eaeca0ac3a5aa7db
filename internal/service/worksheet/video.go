package worksheet

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/michaelwsd/lingualift/internal/domain"
	"github.com/michaelwsd/lingualift/internal/llm"
)

const (
	quizSize    = 5
	activityKey = "videoActivity"
)

var videoHosts = map[string]bool{
	"youtube.com":   true,
	"m.youtube.com": true,
	"youtu.be":      true,
	"vimeo.com":     true,
}

var quizSchema = llm.Object("Comprehension quiz about a video",
	llm.Prop("mcqs", llm.Array("Multiple-choice questions.",
		llm.Object("",
			llm.Prop("question", llm.String("The question text.")),
			llm.Prop("options", llm.Array("Four answer options.", llm.String("")).Exactly(4)),
			llm.Prop("answer", llm.String("The correct option, copied exactly.")),
		),
	).Exactly(quizSize)),
	llm.Prop("trueFalse", llm.Array("True or false statements.",
		llm.Object("",
			llm.Prop("question", llm.String("The statement.")),
			llm.Prop("answer", llm.Enum("Whether the statement is true.", "True", "False")),
		),
	).Exactly(quizSize)),
)

type quizPayload struct {
	MCQs []struct {
		Question string   `json:"question"`
		Options  []string `json:"options"`
		Answer   string   `json:"answer"`
	} `json:"mcqs"`
	TrueFalse []struct {
		Question string `json:"question"`
		Answer   any    `json:"answer"`
	} `json:"trueFalse"`
}

type activityPayload struct {
	Title       string `json:"title"`
	Channel     string `json:"channel"`
	URL         string `json:"url"`
	Description string `json:"description"`
	quizPayload
}

func searchPrompt(passage *domain.Passage) string {
	return fmt.Sprintf(`Use Google Search to find one real, currently available educational YouTube video suitable for a VCE English student that relates to the passage %q about %q.
Then write a comprehension activity for that video with exactly %d multiple-choice questions (4 options each) and exactly %d true/false statements.

Respond with a JSON object in a json code block, shaped like this:
{"videoActivity": {"title": "...", "channel": "...", "url": "https://www.youtube.com/watch?v=...", "description": "...",
  "mcqs": [{"question": "...", "options": ["...", "...", "...", "..."], "answer": "..."}],
  "trueFalse": [{"question": "...", "answer": "True"}]}}`,
		passage.Title, passage.Theme, quizSize, quizSize)
}

func fallbackPrompt(v Video) string {
	return fmt.Sprintf(`Write a comprehension quiz for VCE English students about the video %q by %s (%s).
Video summary: %s
Write exactly %d multiple-choice questions with 4 options each and exactly %d true/false statements. Only ask about ideas in the summary.`,
		v.Title, v.Channel, v.URL, v.Description, quizSize, quizSize)
}

// videoActivity runs the tool-augmented request and recovers the activity
// from free text. When recovery fails it falls back to a catalog video with a
// schema-constrained quiz. Grounding citations that point at a video host
// override the URL of a recovered activity; a catalog activity is kept as is
// since its quiz describes that exact video.
func (s *Service) videoActivity(ctx context.Context, passage *domain.Passage) (*domain.VideoActivity, error) {
	resp, err := s.limits.Call(ctx, s.gen, llm.Request{
		Prompt: searchPrompt(passage),
		Search: true,
	})

	var activity *domain.VideoActivity
	if err == nil {
		activity, err = extractActivity(resp.Text)
	}
	if err == nil {
		preferCitation(activity, resp.Citations)
		return activity, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	s.log.WarnContext(ctx, "video search unusable, using catalog",
		slog.String("passage_id", passage.ID.String()),
		slog.String("error", err.Error()),
	)
	return s.fallbackActivity(ctx, passage)
}

// extractActivity recovers the activity object through the JSON recovery
// ladder. Any failure wraps domain.ErrExtraction.
func extractActivity(text string) (*domain.VideoActivity, error) {
	raw, err := llm.ExtractObject(text, activityKey)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		VideoActivity activityPayload `json:"videoActivity"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrExtraction, err)
	}
	p := wrapper.VideoActivity
	if strings.TrimSpace(p.Title) == "" || strings.TrimSpace(p.URL) == "" {
		return nil, fmt.Errorf("%w: video without title or url", domain.ErrExtraction)
	}

	mcqs, tf := normalizeQuiz(p.quizPayload)
	if len(mcqs) == 0 && len(tf) == 0 {
		return nil, fmt.Errorf("%w: video without questions", domain.ErrExtraction)
	}
	return &domain.VideoActivity{
		Title:       strings.TrimSpace(p.Title),
		Channel:     strings.TrimSpace(p.Channel),
		URL:         strings.TrimSpace(p.URL),
		Description: strings.TrimSpace(p.Description),
		MCQs:        mcqs,
		TrueFalse:   tf,
	}, nil
}

func (s *Service) fallbackActivity(ctx context.Context, passage *domain.Passage) (*domain.VideoActivity, error) {
	video := pickVideo(s.catalog, passage.Theme+" "+passage.Title)

	resp, err := s.limits.Call(ctx, s.gen, llm.Request{
		Prompt: fallbackPrompt(video),
		Schema: quizSchema,
	})
	if err != nil {
		return nil, domain.GenerationError("generate fallback quiz", err)
	}

	var payload quizPayload
	if err := llm.Decode(resp.Text, &payload); err != nil {
		return nil, domain.GenerationError("generate fallback quiz", err)
	}
	mcqs, tf := normalizeQuiz(payload)
	if len(mcqs) < quizSize || len(tf) < quizSize {
		return nil, domain.GenerationError("generate fallback quiz",
			fmt.Errorf("got %d multiple-choice and %d true/false items, want %d each", len(mcqs), len(tf), quizSize))
	}

	s.log.InfoContext(ctx, "catalog video selected",
		slog.String("passage_id", passage.ID.String()),
		slog.String("video_url", video.URL),
	)
	return &domain.VideoActivity{
		Title:       video.Title,
		Channel:     video.Channel,
		URL:         video.URL,
		Description: video.Description,
		MCQs:        mcqs,
		TrueFalse:   tf,
	}, nil
}

// normalizeQuiz assigns ids and types, resolves letter answers to options
// and drops unusable items. At most quizSize of each kind are kept.
func normalizeQuiz(in quizPayload) (mcqs, tf []domain.QuizQuestion) {
	for _, q := range in.MCQs {
		question := strings.TrimSpace(q.Question)
		options := make([]string, 0, len(q.Options))
		for _, o := range q.Options {
			if o = strings.TrimSpace(o); o != "" {
				options = append(options, o)
			}
		}
		answer, ok := resolveOption(strings.TrimSpace(q.Answer), options)
		if question == "" || len(options) < 2 || !ok || len(mcqs) == quizSize {
			continue
		}
		mcqs = append(mcqs, domain.QuizQuestion{
			ID:       uuid.New(),
			Question: question,
			Options:  options,
			Answer:   answer,
			Type:     domain.QuestionMCQ,
		})
	}
	for _, q := range in.TrueFalse {
		question := strings.TrimSpace(q.Question)
		answer, ok := trueFalse(q.Answer)
		if question == "" || !ok || len(tf) == quizSize {
			continue
		}
		tf = append(tf, domain.QuizQuestion{
			ID:       uuid.New(),
			Question: question,
			Answer:   answer,
			Type:     domain.QuestionTrueFalse,
		})
	}
	return mcqs, tf
}

// resolveOption matches answer against options case-insensitively, or as a
// letter ("B", "b)", "B.") indexing into options.
func resolveOption(answer string, options []string) (string, bool) {
	if answer == "" {
		return "", false
	}
	for _, o := range options {
		if strings.EqualFold(o, answer) {
			return o, true
		}
	}
	letter := strings.TrimRight(answer, ".):")
	if len(letter) == 1 {
		idx := int(strings.ToUpper(letter)[0]) - 'A'
		if idx >= 0 && idx < len(options) {
			return options[idx], true
		}
	}
	for _, o := range options {
		if strings.HasPrefix(strings.ToLower(answer), strings.ToLower(o)) ||
			strings.HasSuffix(strings.ToLower(answer), strings.ToLower(o)) {
			return o, true
		}
	}
	return "", false
}

// trueFalse accepts booleans and the usual spellings of true and false.
func trueFalse(v any) (string, bool) {
	switch a := v.(type) {
	case bool:
		if a {
			return "True", true
		}
		return "False", true
	case string:
		switch strings.ToLower(strings.TrimSpace(a)) {
		case "true", "t":
			return "True", true
		case "false", "f":
			return "False", true
		}
	}
	return "", false
}

// preferCitation replaces the activity URL with the first citation on a
// video host. The citation title is used unless it is a bare domain.
func preferCitation(a *domain.VideoActivity, citations []llm.Citation) {
	for _, c := range citations {
		if !citesVideo(c) {
			continue
		}
		a.URL = strings.TrimSpace(c.URL)
		if title := strings.TrimSpace(c.Title); title != "" && !isBareDomain(title) {
			a.Title = title
		}
		return
	}
}

// citesVideo reports whether c points at a video host. Grounding links that
// could not be resolved keep an opaque redirect URL, so a bare-domain title
// naming a video host counts too.
func citesVideo(c llm.Citation) bool {
	if videoHosts[c.Host()] {
		return true
	}
	title := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(c.Title)), "www.")
	return isBareDomain(title) && videoHosts[title]
}

func isBareDomain(s string) bool {
	s = strings.ToLower(s)
	return !strings.ContainsAny(s, " \t") && strings.Contains(s, ".")
}
