package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"

	"github.com/michaelwsd/lingualift/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pagePassage    = "passage.html"
	pageWorksheet  = "worksheet.html"
	pageCollection = "collection.html"
)

// Printer renders printable HTML documents. Student mode leaves out answers,
// explanations and sample responses.
type Printer struct {
	templates map[string]*template.Template
}

// NewPrinter parses the embedded templates.
func NewPrinter() (*Printer, error) {
	funcMap := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"optionLetter": func(i int) string {
			return string(rune('A' + i))
		},
		"answerAt": func(answers []string, i int) string {
			if i < len(answers) {
				return answers[i]
			}
			return ""
		},
		"isLast": func(i, n int) bool { return i == n-1 },
	}

	templates := make(map[string]*template.Template)
	for _, page := range []string{pagePassage, pageWorksheet, pageCollection} {
		tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = tmpl
	}
	return &Printer{templates: templates}, nil
}

type document struct {
	Title   string
	Teacher bool
}

type passageDoc struct {
	document
	Passage *domain.Passage
	Body    template.HTML
}

type worksheetDoc struct {
	document
	Passage   *domain.Passage
	Body      template.HTML
	Worksheet *domain.Worksheet
	WordBank  []string
}

type collectionDoc struct {
	document
	Words        []domain.SavedWord
	Practice     *domain.Passage
	PracticeBody template.HTML
}

// Passage writes the printable passage with its questions, writing task and
// glossary.
func (p *Printer) Passage(w io.Writer, passage *domain.Passage, mode domain.PrintMode) error {
	if !mode.IsValid() {
		return domain.NewValidationError("mode", "must be student or teacher")
	}
	body, err := plainHTML(passage.Content)
	if err != nil {
		return err
	}
	return p.render(w, pagePassage, passageDoc{
		document: document{Title: passage.Title, Teacher: mode == domain.PrintTeacher},
		Passage:  passage,
		Body:     body,
	})
}

// Worksheet writes the four-part worksheet. The word bank lists the
// collection words.
func (p *Printer) Worksheet(w io.Writer, passage *domain.Passage, ws *domain.Worksheet, words []domain.SavedWord, mode domain.PrintMode) error {
	if !mode.IsValid() {
		return domain.NewValidationError("mode", "must be student or teacher")
	}
	body, err := plainHTML(passage.Content)
	if err != nil {
		return err
	}
	bank := make([]string, 0, len(words))
	for _, sw := range words {
		bank = append(bank, sw.Text)
	}
	return p.render(w, pageWorksheet, worksheetDoc{
		document:  document{Title: passage.Title, Teacher: mode == domain.PrintTeacher},
		Passage:   passage,
		Body:      body,
		Worksheet: ws,
		WordBank:  bank,
	})
}

// Collection writes the saved words and, when present, the practice passage.
func (p *Printer) Collection(w io.Writer, words []domain.SavedWord, practice *domain.Passage) error {
	doc := collectionDoc{
		document: document{Title: "My Word Collection"},
		Words:    words,
		Practice: practice,
	}
	if practice != nil {
		body, err := plainHTML(practice.Content)
		if err != nil {
			return err
		}
		doc.PracticeBody = body
	}
	return p.render(w, pageCollection, doc)
}

func (p *Printer) render(w io.Writer, name string, data any) error {
	tmpl, ok := p.templates[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// plainHTML converts markdown without any interactive units. Raw HTML in the
// source is omitted by goldmark's default renderer.
func plainHTML(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
