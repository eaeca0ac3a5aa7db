// Package anchor marks vocabulary occurrences in passage text.
//
// Anchoring is pure: it never reorders, drops or rewrites characters of the
// input. Every whole-word, case-insensitive occurrence of a vocabulary word
// becomes a segment tagged with the entry id; everything else stays a plain
// segment. Concatenating the segment texts always yields the input.
package anchor

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/michaelwsd/lingualift/internal/domain"
)

// Scheme is the link scheme used for vocabulary references in markdown.
const Scheme = "vocab:"

// Entry is a vocabulary surface form with the id it anchors to.
type Entry struct {
	ID   uuid.UUID
	Word string
}

// Entries converts passage vocabulary to anchoring entries, keeping order.
func Entries(vocab []domain.VocabularyWord) []Entry {
	out := make([]Entry, len(vocab))
	for i, v := range vocab {
		out[i] = Entry{ID: v.ID, Word: v.Word}
	}
	return out
}

// Segment is a run of text. VocabID is uuid.Nil for plain text.
type Segment struct {
	Text    string
	VocabID uuid.UUID
}

// IsVocab reports whether the segment is a vocabulary unit.
func (s Segment) IsVocab() bool { return s.VocabID != uuid.Nil }

// Document is anchored passage text.
type Document struct {
	Segments []Segment
}

// Text returns the original content with all anchors removed.
func (d Document) Text() string {
	var b strings.Builder
	for _, s := range d.Segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Markdown returns the content with each vocabulary unit written as
// [text](vocab:<id>).
func (d Document) Markdown() string {
	var b strings.Builder
	for _, s := range d.Segments {
		if !s.IsVocab() {
			b.WriteString(s.Text)
			continue
		}
		b.WriteByte('[')
		b.WriteString(escapeLinkText(s.Text))
		b.WriteString("](")
		b.WriteString(Scheme)
		b.WriteString(s.VocabID.String())
		b.WriteByte(')')
	}
	return b.String()
}

// Units returns the vocabulary segments in document order.
func (d Document) Units() []Segment {
	var out []Segment
	for _, s := range d.Segments {
		if s.IsVocab() {
			out = append(out, s)
		}
	}
	return out
}

type span struct {
	start, end int
	id         uuid.UUID
}

func (s span) overlaps(start, end int) bool {
	return start < s.end && s.start < end
}

// Anchor tags every occurrence of each entry's word in content.
//
// Longer words are matched first so a shorter entry can never claim part of
// a longer one ("art" inside "artefact"). Entries of equal length keep their
// input order. Existing markdown links and inline code are never anchored.
func Anchor(content string, entries []Entry) Document {
	if content == "" {
		return Document{}
	}
	if len(entries) == 0 {
		return Document{Segments: []Segment{{Text: content}}}
	}

	ordered := slices.Clone(entries)
	slices.SortStableFunc(ordered, func(a, b Entry) int {
		return cmp.Compare(utf8.RuneCountInString(strings.TrimSpace(b.Word)), utf8.RuneCountInString(strings.TrimSpace(a.Word)))
	})

	claimed := protectedSpans(content)
	var units []span

	for _, e := range ordered {
		m := newMatcher(e.Word)
		if m == nil {
			continue
		}
		for _, loc := range m.find(content) {
			if isClaimed(claimed, loc[0], loc[1]) {
				continue
			}
			s := span{start: loc[0], end: loc[1], id: e.ID}
			claimed = append(claimed, s)
			units = append(units, s)
		}
	}

	if len(units) == 0 {
		return Document{Segments: []Segment{{Text: content}}}
	}
	slices.SortFunc(units, func(a, b span) int { return cmp.Compare(a.start, b.start) })

	segments := make([]Segment, 0, 2*len(units)+1)
	pos := 0
	for _, u := range units {
		if u.start > pos {
			segments = append(segments, Segment{Text: content[pos:u.start]})
		}
		segments = append(segments, Segment{Text: content[u.start:u.end], VocabID: u.id})
		pos = u.end
	}
	if pos < len(content) {
		segments = append(segments, Segment{Text: content[pos:]})
	}
	return Document{Segments: segments}
}

// matcher finds case-insensitive whole-word occurrences of a word.
// Boundaries are only required on edges that are word characters, so
// forms like "C++" or "(sic)" still match. Word characters are letters,
// digits, combining marks and underscore in any script.
type matcher struct {
	re          *regexp.Regexp
	left, right bool
}

// newMatcher returns nil for a blank word.
func newMatcher(word string) *matcher {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil
	}
	first, _ := utf8.DecodeRuneInString(word)
	last, _ := utf8.DecodeLastRuneInString(word)
	return &matcher{
		re:    regexp.MustCompile(`(?i)` + regexp.QuoteMeta(word)),
		left:  isWordRune(first),
		right: isWordRune(last),
	}
}

// find returns the byte ranges of every non-overlapping whole-word match.
// A match rejected at a boundary resumes one rune later, so an overlapping
// candidate is still considered.
func (m *matcher) find(content string) [][2]int {
	var out [][2]int
	for pos := 0; pos < len(content); {
		loc := m.re.FindStringIndex(content[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if start == end {
			break
		}
		if m.bounded(content, start, end) {
			out = append(out, [2]int{start, end})
			pos = end
			continue
		}
		_, size := utf8.DecodeRuneInString(content[start:])
		pos = start + size
	}
	return out
}

func (m *matcher) bounded(content string, start, end int) bool {
	if m.left && start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(content[:start]); isWordRune(r) {
			return false
		}
	}
	if m.right && end < len(content) {
		if r, _ := utf8.DecodeRuneInString(content[end:]); isWordRune(r) {
			return false
		}
	}
	return true
}

func isClaimed(claimed []span, start, end int) bool {
	for _, c := range claimed {
		if c.overlaps(start, end) {
			return true
		}
	}
	return false
}

var protectedRe = regexp.MustCompile(
	"!?\\[[^\\]\\n]*\\]\\([^)\\n]*\\)" + // inline links and images
		"|`[^`\\n]+`" + // inline code
		"|<[a-zA-Z][a-zA-Z0-9+.-]*:[^>\\s]*>", // autolinks
)

func protectedSpans(content string) []span {
	var out []span
	for _, loc := range protectedRe.FindAllStringIndex(content, -1) {
		out = append(out, span{start: loc[0], end: loc[1]})
	}
	return out
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

var linkTextEscaper = strings.NewReplacer(`\`, `\\`, `[`, `\[`, `]`, `\]`)

func escapeLinkText(s string) string { return linkTextEscaper.Replace(s) }

var vocabLinkRe = regexp.MustCompile(`\[((?:\\.|[^\\\]])*)\]\(` + regexp.QuoteMeta(Scheme) + `[^)\s]*\)`)

var linkTextUnescaper = strings.NewReplacer(`\\`, `\`, `\[`, `[`, `\]`, `]`)

// Strip removes vocabulary link syntax from markdown produced by
// Document.Markdown, leaving the enclosed text.
func Strip(markdown string) string {
	return vocabLinkRe.ReplaceAllStringFunc(markdown, func(m string) string {
		sub := vocabLinkRe.FindStringSubmatch(m)
		return linkTextUnescaper.Replace(sub[1])
	})
}
