// Package render turns passages into HTML: the interactive passage body and
// the printable documents.
package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/michaelwsd/lingualift/internal/anchor"
	"github.com/michaelwsd/lingualift/internal/domain"
)

// tokenRe splits paragraph text into words and whitespace runs.
var tokenRe = regexp.MustCompile(`\S+|\s+`)

// Passage renders the passage content as HTML. Vocabulary occurrences become
// annotated units and every other word in paragraph text becomes a clickable
// word unit.
func Passage(p *domain.Passage) (string, error) {
	if p == nil {
		return "", nil
	}
	doc := anchor.Anchor(p.Content, anchor.Entries(p.Vocabulary))
	return Markdown(doc.Markdown(), p.Vocabulary)
}

// Markdown renders anchored markdown, resolving vocab: references against
// vocab.
func Markdown(source string, vocab []domain.VocabularyWord) (string, error) {
	byID := make(map[uuid.UUID]domain.VocabularyWord, len(vocab))
	for _, v := range vocab {
		byID[v.ID] = v
	}

	md := goldmark.New(
		goldmark.WithRendererOptions(
			renderer.WithNodeRenderers(util.Prioritized(newPassageRenderer(byID), 100)),
		),
	)

	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render passage: %w", err)
	}
	return buf.String(), nil
}

// passageRenderer overrides link and text rendering of the default HTML
// renderer.
type passageRenderer struct {
	html.Config
	vocab map[uuid.UUID]domain.VocabularyWord
}

func newPassageRenderer(vocab map[uuid.UUID]domain.VocabularyWord) *passageRenderer {
	return &passageRenderer{Config: html.NewConfig(), vocab: vocab}
}

func (r *passageRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindLink, r.renderLink)
	reg.Register(ast.KindText, r.renderText)
}

// vocabWord resolves a vocab: destination.
func (r *passageRenderer) vocabWord(dest []byte) (domain.VocabularyWord, bool, bool) {
	raw, ok := strings.CutPrefix(string(dest), anchor.Scheme)
	if !ok {
		return domain.VocabularyWord{}, false, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return domain.VocabularyWord{}, true, false
	}
	w, found := r.vocab[id]
	return w, true, found
}

func (r *passageRenderer) renderLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Link)
	word, isVocab, found := r.vocabWord(n.Destination)

	switch {
	case isVocab && !found:
		// Unknown ids keep their text only.
		return ast.WalkContinue, nil
	case isVocab:
		if entering {
			_, _ = w.WriteString(`<span class="vocab-term" data-vocab-id="`)
			_, _ = w.WriteString(word.ID.String())
			_, _ = w.WriteString(`"><span class="vocab-text">`)
			return ast.WalkContinue, nil
		}
		_, _ = w.WriteString(`</span><span class="vocab-tooltip" role="tooltip"><strong class="vocab-word">`)
		_, _ = w.Write(util.EscapeHTML([]byte(word.Word)))
		_, _ = w.WriteString(`</strong> <span class="vocab-definition">`)
		_, _ = w.Write(util.EscapeHTML([]byte(word.Definition)))
		_, _ = w.WriteString(`</span></span></span>`)
		return ast.WalkContinue, nil
	}

	if !entering {
		_, _ = w.WriteString("</a>")
		return ast.WalkContinue, nil
	}
	_, _ = w.WriteString(`<a href="`)
	if r.Unsafe || !html.IsDangerousURL(n.Destination) {
		_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.Destination, true)))
	}
	_ = w.WriteByte('"')
	if n.Title != nil {
		_, _ = w.WriteString(` title="`)
		r.Writer.Write(w, n.Title)
		_ = w.WriteByte('"')
	}
	_, _ = w.WriteString(` target="_blank" rel="noopener noreferrer">`)
	return ast.WalkContinue, nil
}

func (r *passageRenderer) renderText(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Text)
	value := n.Segment.Value(source)

	switch {
	case n.IsRaw():
		r.Writer.RawWrite(w, value)
	case clickable(n):
		for _, tok := range tokenRe.FindAll(value, -1) {
			clean := domain.CleanWord(string(tok))
			if clean == "" {
				r.Writer.Write(w, tok)
				continue
			}
			_, _ = w.WriteString(`<span class="clickable-word" data-word="`)
			_, _ = w.Write(util.EscapeHTML([]byte(clean)))
			_, _ = w.WriteString(`">`)
			r.Writer.Write(w, tok)
			_, _ = w.WriteString(`</span>`)
		}
	default:
		r.Writer.Write(w, value)
	}

	switch {
	case n.HardLineBreak() || (n.SoftLineBreak() && r.HardWraps):
		_, _ = w.WriteString("<br>\n")
	case n.SoftLineBreak():
		_ = w.WriteByte('\n')
	}
	return ast.WalkContinue, nil
}

// clickable reports whether a text node is ordinary paragraph text: inside a
// paragraph and not inside any link.
func clickable(n ast.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		switch p.Kind() {
		case ast.KindLink, ast.KindAutoLink, ast.KindImage:
			return false
		case ast.KindParagraph:
			return true
		}
		if p.Type() == ast.TypeBlock {
			return false
		}
	}
	return false
}
