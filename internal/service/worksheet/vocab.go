package worksheet

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/michaelwsd/lingualift/internal/domain"
	"github.com/michaelwsd/lingualift/internal/llm"
)

const exerciseCount = 5

var blankRe = regexp.MustCompile(`_{3,}`)

var exercisesSchema = llm.Object("Vocabulary fill-in-the-blank exercises",
	llm.Prop("exercises", llm.Array("Fill-in-the-blank sentences.",
		llm.Object("",
			llm.Prop("textWithBlanks", llm.String("A sentence or short paragraph with each missing word replaced by "+domain.BlankMarker+".")),
			llm.Prop("answers", llm.Array("The missing words in order of the blanks.", llm.String(""))),
		),
	).Exactly(exerciseCount)),
)

type exercisesPayload struct {
	Exercises []struct {
		TextWithBlanks string   `json:"textWithBlanks"`
		Answers        []string `json:"answers"`
	} `json:"exercises"`
}

func exercisesPrompt(passage *domain.Passage, words []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create %d vocabulary fill-in-the-blank exercises for a VCE English student who has read a passage titled %q about %q.\n",
		exerciseCount, passage.Title, passage.Theme)
	if len(words) > 0 {
		fmt.Fprintf(&b, "Use only these words or phrases as answers: %s.\n", strings.Join(words, ", "))
	} else {
		b.WriteString("Use sophisticated general academic vocabulary as answers.\n")
	}
	fmt.Fprintf(&b, "Replace each missing word with exactly %s and list the answers in order of the blanks.", domain.BlankMarker)
	return b.String()
}

func (s *Service) vocabExercises(ctx context.Context, passage *domain.Passage, words []domain.SavedWord) ([]domain.VocabExercise, error) {
	bank := make([]string, 0, len(words))
	for _, w := range words {
		if t := strings.TrimSpace(w.Text); t != "" {
			bank = append(bank, t)
		}
	}

	resp, err := s.limits.Call(ctx, s.gen, llm.Request{
		Prompt: exercisesPrompt(passage, bank),
		Schema: exercisesSchema,
	})
	if err != nil {
		return nil, domain.GenerationError("generate vocabulary exercises", err)
	}

	var payload exercisesPayload
	if err := llm.Decode(resp.Text, &payload); err != nil {
		return nil, domain.GenerationError("generate vocabulary exercises", err)
	}

	out := normalizeExercises(payload)
	if len(out) == 0 {
		return nil, domain.GenerationError("generate vocabulary exercises", fmt.Errorf("no usable exercises in %d returned", len(payload.Exercises)))
	}
	return out, nil
}

// normalizeExercises canonicalizes blank markers and drops exercises whose
// blank count does not match their answers.
func normalizeExercises(in exercisesPayload) []domain.VocabExercise {
	out := make([]domain.VocabExercise, 0, len(in.Exercises))
	for _, e := range in.Exercises {
		text := blankRe.ReplaceAllString(strings.TrimSpace(e.TextWithBlanks), domain.BlankMarker)
		answers := make([]string, 0, len(e.Answers))
		for _, a := range e.Answers {
			if a = strings.TrimSpace(a); a != "" {
				answers = append(answers, a)
			}
		}
		blanks := strings.Count(text, domain.BlankMarker)
		if blanks == 0 || blanks != len(answers) {
			continue
		}
		out = append(out, domain.VocabExercise{
			ID:             uuid.New(),
			TextWithBlanks: text,
			Answers:        answers,
		})
		if len(out) == exerciseCount {
			break
		}
	}
	return out
}
