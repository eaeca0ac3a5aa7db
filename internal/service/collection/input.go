package collection

import (
	"strings"

	"github.com/google/uuid"

	"github.com/michaelwsd/lingualift/internal/domain"
)

// AddWordInput holds the selected text and the sentence it came from.
type AddWordInput struct {
	Text    string
	Context string
}

// Validate checks all fields and collects all errors.
func (i AddWordInput) Validate() error {
	var errs []domain.FieldError

	text := strings.TrimSpace(i.Text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if len(text) > 500 {
		errs = append(errs, domain.FieldError{Field: "text", Message: "max 500 characters"})
	}
	if len(strings.TrimSpace(i.Context)) > 2000 {
		errs = append(errs, domain.FieldError{Field: "context", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteWordInput identifies the word to remove.
type DeleteWordInput struct {
	WordID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteWordInput) Validate() error {
	if i.WordID == uuid.Nil {
		return domain.NewValidationError("word_id", "required")
	}
	return nil
}
