package domain

import (
	"time"

	"github.com/google/uuid"
)

// SavedWord is a user-selected span with generated metadata. It is a copy,
// never a reference into passage data.
type SavedWord struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Text            string
	Definition      string
	Synonym         string
	ExampleSentence string
	CreatedAt       time.Time
}

// WordDetail is the generated metadata for a selected span.
type WordDetail struct {
	Definition      string
	Synonym         string
	ExampleSentence string
}
