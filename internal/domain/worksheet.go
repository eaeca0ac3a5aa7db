package domain

import (
	"strings"

	"github.com/google/uuid"
)

// BlankMarker separates the parts of a fill-in-the-blank exercise.
const BlankMarker = "__________"

// VocabExercise is a sentence with blanks and the ordered answers.
type VocabExercise struct {
	ID             uuid.UUID
	TextWithBlanks string
	Answers        []string
}

// Parts splits the exercise text on BlankMarker.
func (e VocabExercise) Parts() []string {
	return strings.Split(e.TextWithBlanks, BlankMarker)
}

// QuizQuestion is a multiple-choice or true/false item about a video.
// Options is empty for true/false items.
type QuizQuestion struct {
	ID       uuid.UUID
	Question string
	Options  []string
	Answer   string
	Type     QuestionType
}

// VideoActivity is a video with its comprehension quiz.
type VideoActivity struct {
	Title       string
	Channel     string
	URL         string
	Description string
	MCQs        []QuizQuestion
	TrueFalse   []QuizQuestion
}

// Worksheet is the combined vocabulary and video worksheet. Immutable.
type Worksheet struct {
	VocabExercises []VocabExercise
	VideoActivity  VideoActivity
}
