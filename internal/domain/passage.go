package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultCustomLabel is the theme label used when a custom topic is blank.
const DefaultCustomLabel = "Custom"

// GenerationConfig is the user's request for a passage.
type GenerationConfig struct {
	Theme          Theme
	CustomTopic    string
	LiteratureType LiteratureType
	Difficulty     Difficulty
}

// Validate checks all fields and collects all errors.
func (c GenerationConfig) Validate() error {
	var errs []FieldError

	if !c.Theme.IsValid() {
		errs = append(errs, FieldError{Field: "theme", Message: "unknown theme"})
	}
	if c.Theme == ThemeCustom && strings.TrimSpace(c.CustomTopic) == "" {
		errs = append(errs, FieldError{Field: "custom_topic", Message: "required for custom theme"})
	}
	if len(c.CustomTopic) > 200 {
		errs = append(errs, FieldError{Field: "custom_topic", Message: "max 200 characters"})
	}
	if !c.LiteratureType.IsValid() {
		errs = append(errs, FieldError{Field: "literature_type", Message: "unknown literature type"})
	}
	if !c.Difficulty.IsValid() {
		errs = append(errs, FieldError{Field: "difficulty", Message: "unknown difficulty"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// Topic returns the subject handed to the provider.
func (c GenerationConfig) Topic() string {
	if c.Theme == ThemeCustom {
		return strings.TrimSpace(c.CustomTopic)
	}
	return c.Theme.String()
}

// ThemeLabel returns the label stored on the passage.
func (c GenerationConfig) ThemeLabel() string {
	if c.Theme != ThemeCustom {
		return c.Theme.String()
	}
	if topic := strings.TrimSpace(c.CustomTopic); topic != "" {
		return topic
	}
	return DefaultCustomLabel
}

// VocabularyWord is a glossary entry extracted verbatim from passage text.
type VocabularyWord struct {
	ID              uuid.UUID
	Word            string
	Definition      string
	ExampleSentence string
}

// Question is a reading comprehension question with its answer key.
type Question struct {
	ID          uuid.UUID
	Question    string
	Answer      string
	Explanation string
}

// Passage is a generated reading passage. It is replaced wholesale on
// regeneration and never mutated field by field.
type Passage struct {
	ID             uuid.UUID
	Title          string
	Content        string
	Vocabulary     []VocabularyWord
	Questions      []Question
	WritingPrompt  string
	SampleResponse string
	Theme          string
	Type           LiteratureType
	CreatedAt      time.Time
}

// VocabularyByID returns the entry with the given id.
func (p *Passage) VocabularyByID(id uuid.UUID) (VocabularyWord, bool) {
	for _, v := range p.Vocabulary {
		if v.ID == id {
			return v, true
		}
	}
	return VocabularyWord{}, false
}
