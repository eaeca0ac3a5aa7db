package rest

import (
	"time"

	"github.com/michaelwsd/lingualift/internal/domain"
	"github.com/michaelwsd/lingualift/internal/service/lookup"
)

type vocabularyResponse struct {
	ID              string `json:"id"`
	Word            string `json:"word"`
	Definition      string `json:"definition"`
	ExampleSentence string `json:"exampleSentence"`
}

type questionResponse struct {
	ID          string `json:"id"`
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation"`
}

type passageResponse struct {
	ID             string               `json:"id"`
	Title          string               `json:"title"`
	Content        string               `json:"content"`
	HTML           string               `json:"html"`
	Vocabulary     []vocabularyResponse `json:"vocabulary"`
	Questions      []questionResponse   `json:"questions"`
	WritingPrompt  string               `json:"writingPrompt"`
	SampleResponse string               `json:"sampleResponse"`
	Theme          string               `json:"theme"`
	Type           string               `json:"type"`
	CreatedAt      time.Time            `json:"createdAt"`
}

func toPassageResponse(p *domain.Passage, html string) passageResponse {
	resp := passageResponse{
		ID:             p.ID.String(),
		Title:          p.Title,
		Content:        p.Content,
		HTML:           html,
		Vocabulary:     make([]vocabularyResponse, 0, len(p.Vocabulary)),
		Questions:      make([]questionResponse, 0, len(p.Questions)),
		WritingPrompt:  p.WritingPrompt,
		SampleResponse: p.SampleResponse,
		Theme:          p.Theme,
		Type:           p.Type.String(),
		CreatedAt:      p.CreatedAt,
	}
	for _, v := range p.Vocabulary {
		resp.Vocabulary = append(resp.Vocabulary, vocabularyResponse{
			ID:              v.ID.String(),
			Word:            v.Word,
			Definition:      v.Definition,
			ExampleSentence: v.ExampleSentence,
		})
	}
	for _, q := range p.Questions {
		resp.Questions = append(resp.Questions, questionResponse{
			ID:          q.ID.String(),
			Question:    q.Question,
			Answer:      q.Answer,
			Explanation: q.Explanation,
		})
	}
	return resp
}

type savedWordResponse struct {
	ID              string    `json:"id"`
	Text            string    `json:"text"`
	Definition      string    `json:"definition"`
	Synonym         string    `json:"synonym"`
	ExampleSentence string    `json:"exampleSentence"`
	CreatedAt       time.Time `json:"createdAt"`
}

func toSavedWordResponse(w domain.SavedWord) savedWordResponse {
	return savedWordResponse{
		ID:              w.ID.String(),
		Text:            w.Text,
		Definition:      w.Definition,
		Synonym:         w.Synonym,
		ExampleSentence: w.ExampleSentence,
		CreatedAt:       w.CreatedAt,
	}
}

type wordDetailResponse struct {
	Definition      string `json:"definition"`
	Synonym         string `json:"synonym"`
	ExampleSentence string `json:"exampleSentence"`
}

type popoverResponse struct {
	Word       string `json:"word,omitempty"`
	Definition string `json:"definition,omitempty"`
	Status     string `json:"status"`
}

func toPopoverResponse(p lookup.Popover) popoverResponse {
	return popoverResponse{Word: p.Word, Definition: p.Definition, Status: string(p.Status)}
}

type vocabExerciseResponse struct {
	ID             string   `json:"id"`
	TextWithBlanks string   `json:"textWithBlanks"`
	Answers        []string `json:"answers"`
}

type quizQuestionResponse struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
	Answer   string   `json:"answer"`
	Type     string   `json:"type"`
}

type videoActivityResponse struct {
	Title       string                 `json:"title"`
	Channel     string                 `json:"channel"`
	URL         string                 `json:"url"`
	Description string                 `json:"description"`
	MCQs        []quizQuestionResponse `json:"mcqs"`
	TrueFalse   []quizQuestionResponse `json:"trueFalse"`
}

type worksheetResponse struct {
	VocabExercises []vocabExerciseResponse `json:"vocabExercises"`
	VideoActivity  videoActivityResponse   `json:"videoActivity"`
}

func toWorksheetResponse(ws *domain.Worksheet) worksheetResponse {
	resp := worksheetResponse{
		VocabExercises: make([]vocabExerciseResponse, 0, len(ws.VocabExercises)),
		VideoActivity: videoActivityResponse{
			Title:       ws.VideoActivity.Title,
			Channel:     ws.VideoActivity.Channel,
			URL:         ws.VideoActivity.URL,
			Description: ws.VideoActivity.Description,
			MCQs:        toQuizResponses(ws.VideoActivity.MCQs),
			TrueFalse:   toQuizResponses(ws.VideoActivity.TrueFalse),
		},
	}
	for _, e := range ws.VocabExercises {
		resp.VocabExercises = append(resp.VocabExercises, vocabExerciseResponse{
			ID:             e.ID.String(),
			TextWithBlanks: e.TextWithBlanks,
			Answers:        e.Answers,
		})
	}
	return resp
}

func toQuizResponses(qs []domain.QuizQuestion) []quizQuestionResponse {
	out := make([]quizQuestionResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, quizQuestionResponse{
			ID:       q.ID.String(),
			Question: q.Question,
			Options:  q.Options,
			Answer:   q.Answer,
			Type:     string(q.Type),
		})
	}
	return out
}
